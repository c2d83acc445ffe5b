//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupPostgres(t *testing.T) *Postgres {
	t.Helper()

	dsn := testutil.StartPostgres(t)

	database, err := db.NewConfig(dsn).Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(database.Close)

	migrator := migrations.NewMigrator(database.DB(), zap.NewNop())
	require.NoError(t, migrator.RunUp())

	version, dirty, err := migrator.GetVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(3), version)

	return NewPostgres(database.Pool)
}

func TestPostgres_Links(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()

	link := model.Link{
		ID:           1,
		Domain:       "short.ly",
		ShortURI:     "abc1234",
		FullShortURL: "short.ly/abc1234",
		OriginURL:    "https://example.com",
		Gid:          "default",
		Describe:     "example",
	}

	require.NoError(t, repo.InsertLink(ctx, link))

	duplicate := link
	duplicate.ID = 2
	err := repo.InsertLink(ctx, duplicate)
	require.ErrorIs(t, err, ErrUniqueViolation)

	got, err := repo.GetLinkByFullShortURL(ctx, "short.ly/abc1234")
	require.NoError(t, err)
	assert.Equal(t, link.OriginURL, got.OriginURL)
	assert.Equal(t, link.Describe, got.Describe)

	_, err = repo.GetLinkByFullShortURL(ctx, "short.ly/missing")
	require.ErrorIs(t, err, ErrNotFound)

	var keys []string
	require.NoError(t, repo.ForEachFullShortURL(ctx, func(key string) error {
		keys = append(keys, key)
		return nil
	}))
	assert.Equal(t, []string{"short.ly/abc1234"}, keys)
}

func TestPostgres_Users(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertUser(ctx, model.User{ID: 1, Username: "alice", PasswordHash: "hash"}))
	err := repo.InsertUser(ctx, model.User{ID: 2, Username: "alice", PasswordHash: "other"})
	require.ErrorIs(t, err, ErrUniqueViolation)

	user, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)

	_, err = repo.GetUserByUsername(ctx, "bob")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.UpdateUser(ctx, model.User{Username: "alice", RealName: "Alice", Mail: "a@example.com"}))
	user, err = repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, "Alice", user.RealName)
	assert.Equal(t, "a@example.com", user.Mail)

	err = repo.UpdateUser(ctx, model.User{Username: "bob"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPostgres_AccessLogs(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()

	log := model.AccessLog{
		MessageKey:   "key-1",
		FullShortURL: "short.ly/abc1234",
		RemoteAddr:   "10.0.0.1",
		UserAgent:    "curl/8.0",
		OccurredAt:   time.Now().UTC(),
	}

	require.NoError(t, repo.InsertAccessLog(ctx, log))
	err := repo.InsertAccessLog(ctx, log)
	require.ErrorIs(t, err, ErrUniqueViolation)
}
