package kv

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/clock"
)

var errWrongType = errors.New("operation against a key holding the wrong kind of value")

type entry struct {
	value     string
	hash      map[string]string
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryStore is an in-process Store used when no Redis address is
// configured and in unit tests. Expiry is evaluated lazily against clk.
type MemoryStore struct {
	mutex   sync.Mutex
	entries map[string]*entry
	clk     clock.Clock
}

// NewMemoryStore creates an empty MemoryStore. A nil clk uses the system time.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	if clk == nil {
		clk = clock.Real{}
	}
	return &MemoryStore{
		entries: make(map[string]*entry),
		clk:     clk,
	}
}

// lookup returns the live entry for key, dropping it if it has expired.
// Caller must hold the mutex.
func (s *MemoryStore) lookup(key string) (*entry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(s.clk.Now()) {
		delete(s.entries, key)
		return nil, false
	}
	return e, true
}

func (s *MemoryStore) deadline(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return s.clk.Now().Add(ttl)
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return "", false, nil
	}
	if e.hash != nil {
		return "", false, fmt.Errorf("get %s: %w", key, errWrongType)
	}
	return e.value, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.entries[key] = &entry{value: value, expiresAt: s.deadline(ttl)}
	return nil
}

func (s *MemoryStore) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.lookup(key); ok {
		return false, nil
	}
	s.entries[key] = &entry{value: value, expiresAt: s.deadline(ttl)}
	return true, nil
}

func (s *MemoryStore) Del(_ context.Context, keys ...string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, key := range keys {
		delete(s.entries, key)
	}
	return nil
}

func (s *MemoryStore) DeleteIfEquals(_ context.Context, key, value string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.lookup(key)
	if !ok || e.hash != nil || e.value != value {
		return false, nil
	}
	delete(s.entries, key)
	return true, nil
}

func (s *MemoryStore) HGet(_ context.Context, key, field string) (string, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return "", false, nil
	}
	if e.hash == nil {
		return "", false, fmt.Errorf("hget %s: %w", key, errWrongType)
	}
	value, ok := e.hash[field]
	return value, ok, nil
}

func (s *MemoryStore) HSet(_ context.Context, key, field, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		// Like Redis, a fresh hash has no TTL until Expire is called.
		e = &entry{hash: make(map[string]string)}
		s.entries[key] = e
	}
	if e.hash == nil {
		return fmt.Errorf("hset %s: %w", key, errWrongType)
	}
	e.hash[field] = value
	return nil
}

func (s *MemoryStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return map[string]string{}, nil
	}
	if e.hash == nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, errWrongType)
	}
	return maps.Clone(e.hash), nil
}

func (s *MemoryStore) Expire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return false, nil
	}
	if ttl <= 0 {
		delete(s.entries, key)
		return true, nil
	}
	e.expiresAt = s.deadline(ttl)
	return true, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// TTL returns the remaining lifetime of key, zero for keys without expiry,
// and found == false for missing keys. Used by tests and diagnostics.
func (s *MemoryStore) TTL(key string) (time.Duration, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return 0, false
	}
	if e.expiresAt.IsZero() {
		return 0, true
	}
	return e.expiresAt.Sub(s.clk.Now()), true
}
