package service

import (
	"context"

	"github.com/avc-dev/shortlink/internal/model"
)

// LinkRepository persists links.
type LinkRepository interface {
	// InsertLink fails with repository.ErrUniqueViolation for a taken full short URL.
	InsertLink(ctx context.Context, link model.Link) error
	// GetLinkByFullShortURL fails with repository.ErrNotFound for a missing link.
	GetLinkByFullShortURL(ctx context.Context, fullShortURL string) (model.Link, error)
	ForEachFullShortURL(ctx context.Context, fn func(fullShortURL string) error) error
}

// UserRepository persists users.
type UserRepository interface {
	// InsertUser fails with repository.ErrUniqueViolation for a taken username.
	InsertUser(ctx context.Context, user model.User) error
	// GetUserByUsername fails with repository.ErrNotFound for a missing user.
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	// UpdateUser fails with repository.ErrNotFound for a missing user.
	UpdateUser(ctx context.Context, user model.User) error
	ForEachUsername(ctx context.Context, fn func(username string) error) error
}

// StatsRepository persists link visits.
type StatsRepository interface {
	InsertAccessLog(ctx context.Context, log model.AccessLog) error
}

// ExistenceFilter is a probabilistic set: false is a guaranteed miss.
type ExistenceFilter interface {
	MightContain(ctx context.Context, key string) (bool, error)
	Add(ctx context.Context, key string) error
}

// CodeGenerator produces short codes the link filter does not know yet.
type CodeGenerator interface {
	Generate(ctx context.Context, seed, domain string) (string, error)
}

// IDGenerator hands out unique row ids.
type IDGenerator interface {
	NextID() int64
}

// Locker runs a function under a named non-blocking lock.
type Locker interface {
	WithLock(ctx context.Context, name string, fn func(ctx context.Context) error) error
}

// SessionStore keeps login sessions.
type SessionStore interface {
	Login(ctx context.Context, subject string, snapshot any) (string, error)
	IsValid(ctx context.Context, subject, token string) (bool, error)
	Logout(ctx context.Context, subject, token string) error
}

// StatsPublisher emits a stats message for every resolved link.
type StatsPublisher interface {
	Publish(ctx context.Context, msg model.StatsMessage) error
}
