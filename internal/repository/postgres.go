package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implements every repository on a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres repository.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// InsertLink stores link. A taken full short URL yields ErrUniqueViolation.
func (p *Postgres) InsertLink(ctx context.Context, link model.Link) error {
	query := `
		INSERT INTO links (id, domain, short_uri, full_short_url, origin_url, gid, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := p.pool.Exec(ctx, query,
		link.ID, link.Domain, link.ShortURI, link.FullShortURL, link.OriginURL, link.Gid, link.Describe,
	)
	if err != nil {
		return fmt.Errorf("failed to insert link %s: %w", link.FullShortURL, translate(err))
	}
	return nil
}

// GetLinkByFullShortURL loads a link by its unique key.
func (p *Postgres) GetLinkByFullShortURL(ctx context.Context, fullShortURL string) (model.Link, error) {
	query := `
		SELECT id, domain, short_uri, full_short_url, origin_url, gid, description, created_at
		FROM links
		WHERE full_short_url = $1
	`

	var link model.Link
	err := p.pool.QueryRow(ctx, query, fullShortURL).Scan(
		&link.ID, &link.Domain, &link.ShortURI, &link.FullShortURL,
		&link.OriginURL, &link.Gid, &link.Describe, &link.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Link{}, fmt.Errorf("link %s: %w", fullShortURL, ErrNotFound)
		}
		return model.Link{}, fmt.Errorf("failed to read link %s: %w", fullShortURL, err)
	}
	return link, nil
}

// ForEachFullShortURL calls fn for every stored link key.
func (p *Postgres) ForEachFullShortURL(ctx context.Context, fn func(fullShortURL string) error) error {
	return p.forEach(ctx, `SELECT full_short_url FROM links`, fn)
}

// InsertUser stores user. A taken username yields ErrUniqueViolation.
func (p *Postgres) InsertUser(ctx context.Context, user model.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, real_name, phone, mail)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.RealName, user.Phone, user.Mail,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user %s: %w", user.Username, translate(err))
	}
	return nil
}

// GetUserByUsername loads a user.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	query := `
		SELECT id, username, password_hash, real_name, phone, mail, created_at
		FROM users
		WHERE username = $1
	`

	var user model.User
	err := p.pool.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.RealName,
		&user.Phone, &user.Mail, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user %s: %w", username, ErrNotFound)
		}
		return model.User{}, fmt.Errorf("failed to read user %s: %w", username, err)
	}
	return user, nil
}

// UpdateUser overwrites the profile of user.Username. An empty
// PasswordHash keeps the stored one.
func (p *Postgres) UpdateUser(ctx context.Context, user model.User) error {
	query := `
		UPDATE users
		SET password_hash = COALESCE(NULLIF($2, ''), password_hash),
		    real_name = $3,
		    phone = $4,
		    mail = $5
		WHERE username = $1
	`

	tag, err := p.pool.Exec(ctx, query,
		user.Username, user.PasswordHash, user.RealName, user.Phone, user.Mail,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.Username, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.Username, ErrNotFound)
	}
	return nil
}

// ForEachUsername calls fn for every registered username.
func (p *Postgres) ForEachUsername(ctx context.Context, fn func(username string) error) error {
	return p.forEach(ctx, `SELECT username FROM users`, fn)
}

// InsertAccessLog stores one visit. A replayed message key yields
// ErrUniqueViolation.
func (p *Postgres) InsertAccessLog(ctx context.Context, log model.AccessLog) error {
	query := `
		INSERT INTO link_access_logs (message_key, full_short_url, remote_addr, user_agent, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		log.MessageKey, log.FullShortURL, log.RemoteAddr, log.UserAgent, log.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert access log %s: %w", log.MessageKey, translate(err))
	}
	return nil
}

func (p *Postgres) forEach(ctx context.Context, query string, fn func(string) error) error {
	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return fmt.Errorf("failed to scan key: %w", err)
		}
		if err := fn(value); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate keys: %w", err)
	}
	return nil
}
