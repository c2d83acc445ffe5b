// Package lock provides non-blocking named locks on top of the shared
// key-value store.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/google/uuid"
)

// DefaultTTL bounds how long a crashed holder can keep a lock.
const DefaultTTL = 30 * time.Second

// ErrLockBusy is returned when the lock is held by someone else.
// Callers report it as a conflict and do not retry.
var ErrLockBusy = errors.New("lock is busy")

// Locker hands out named locks.
type Locker struct {
	store kv.Store
	ttl   time.Duration
}

// NewLocker creates a Locker. A non-positive ttl falls back to DefaultTTL.
func NewLocker(store kv.Store, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Locker{store: store, ttl: ttl}
}

// Lock is one successful acquisition.
type Lock struct {
	store kv.Store
	name  string
	owner string
}

// Name returns the lock key.
func (l *Lock) Name() string {
	return l.name
}

// TryAcquire takes the lock without waiting. ErrLockBusy means another
// holder owns it; any other error comes from the store.
func (l *Locker) TryAcquire(ctx context.Context, name string) (*Lock, error) {
	owner := uuid.NewString()

	ok, err := l.store.SetNX(ctx, name, owner, l.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", name, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrLockBusy)
	}

	return &Lock{store: l.store, name: name, owner: owner}, nil
}

// Release frees the lock if it is still ours. A lock that already expired
// and was taken by someone else is left alone.
func (l *Lock) Release(ctx context.Context) error {
	if _, err := l.store.DeleteIfEquals(ctx, l.name, l.owner); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.name, err)
	}
	return nil
}

// WithLock runs fn while holding name. The lock is released even if fn
// panics. A release failure is reported only when fn itself succeeded.
func (l *Locker) WithLock(ctx context.Context, name string, fn func(ctx context.Context) error) (err error) {
	lk, err := l.TryAcquire(ctx, name)
	if err != nil {
		return err
	}

	defer func() {
		// release must run even if ctx was cancelled inside fn
		releaseErr := lk.Release(context.WithoutCancel(ctx))
		if err == nil {
			err = releaseErr
		}
	}()

	return fn(ctx)
}
