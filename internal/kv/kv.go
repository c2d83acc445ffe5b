// Package kv is the client side of the shared key-value cache. Every
// coordination primitive in the service (sessions, idempotency markers,
// named locks) is built on the operations of Store.
package kv

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable wraps every transport-level failure of the cache.
// A missing key is never reported through it: callers get found == false.
var ErrStoreUnavailable = errors.New("key-value store unavailable")

// Store is the set of cache operations the coordination layer relies on.
// Implementations must be linearizable per key.
type Store interface {
	// Get returns the string value of key. found is false when the key does not exist.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set writes value and resets the TTL. A zero ttl means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetNX writes value only if key is absent. ok reports whether the write happened.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (ok bool, err error)
	// Del removes keys. Missing keys are ignored.
	Del(ctx context.Context, keys ...string) error
	// DeleteIfEquals removes key only while it still holds value.
	DeleteIfEquals(ctx context.Context, key, value string) (deleted bool, err error)

	HGet(ctx context.Context, key, field string) (value string, found bool, err error)
	HSet(ctx context.Context, key, field, value string) error
	// HGetAll returns an empty map for a missing key.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// Expire sets the TTL of an existing key. ok is false when the key does not exist.
	Expire(ctx context.Context, key string, ttl time.Duration) (ok bool, err error)

	Ping(ctx context.Context) error
	Close() error
}
