// Package session keeps one login session per subject in the shared
// key-value store.
//
// Sessions live in a hash short-link:login:{subject} whose fields are
// tokens and whose values are JSON snapshots of the logged-in user.
// Logging in again while a session exists returns the same token and
// extends its lifetime instead of opening a parallel session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/google/uuid"
)

const (
	keyPrefix = "short-link:login:"

	// DefaultInitialTTL is the lifetime of a freshly minted session.
	DefaultInitialTTL = 30 * time.Minute
	// DefaultRefreshTTL is the lifetime set when an existing session is reused.
	DefaultRefreshTTL = 30 * 24 * time.Hour
)

// ErrSessionNotFound is returned by Logout and Snapshot when the token
// does not belong to a live session of the subject.
var ErrSessionNotFound = errors.New("session not found")

// Store manages sessions.
type Store struct {
	kv         kv.Store
	initialTTL time.Duration
	refreshTTL time.Duration
	newToken   func() string
}

// NewStore creates a session Store. Non-positive TTLs fall back to the defaults.
func NewStore(store kv.Store, initialTTL, refreshTTL time.Duration) *Store {
	if initialTTL <= 0 {
		initialTTL = DefaultInitialTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	return &Store{
		kv:         store,
		initialTTL: initialTTL,
		refreshTTL: refreshTTL,
		newToken:   uuid.NewString,
	}
}

func loginKey(subject string) string {
	return keyPrefix + subject
}

// Login returns the token of the subject's live session, extending it to
// the refresh TTL, or mints a new session holding snapshot.
func (s *Store) Login(ctx context.Context, subject string, snapshot any) (string, error) {
	key := loginKey(subject)

	existing, err := s.kv.HGetAll(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to load sessions of %s: %w", subject, err)
	}

	if len(existing) > 0 {
		tokens := make([]string, 0, len(existing))
		for token := range existing {
			tokens = append(tokens, token)
		}
		slices.Sort(tokens)

		refreshed, err := s.kv.Expire(ctx, key, s.refreshTTL)
		if err != nil {
			return "", fmt.Errorf("failed to refresh session of %s: %w", subject, err)
		}
		if refreshed {
			return tokens[0], nil
		}
		// the session expired between the read and the refresh
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode session snapshot: %w", err)
	}

	token := s.newToken()
	if err := s.kv.HSet(ctx, key, token, string(data)); err != nil {
		return "", fmt.Errorf("failed to store session of %s: %w", subject, err)
	}
	if _, err := s.kv.Expire(ctx, key, s.initialTTL); err != nil {
		return "", fmt.Errorf("failed to set session ttl of %s: %w", subject, err)
	}

	return token, nil
}

// IsValid reports whether token is a live session of subject. It never
// touches the TTL.
func (s *Store) IsValid(ctx context.Context, subject, token string) (bool, error) {
	if subject == "" || token == "" {
		return false, nil
	}

	_, found, err := s.kv.HGet(ctx, loginKey(subject), token)
	if err != nil {
		return false, fmt.Errorf("failed to check session of %s: %w", subject, err)
	}
	return found, nil
}

// Snapshot decodes the snapshot stored with the session into dst.
func (s *Store) Snapshot(ctx context.Context, subject, token string, dst any) error {
	if subject == "" || token == "" {
		return ErrSessionNotFound
	}

	raw, found, err := s.kv.HGet(ctx, loginKey(subject), token)
	if err != nil {
		return fmt.Errorf("failed to load session of %s: %w", subject, err)
	}
	if !found {
		return ErrSessionNotFound
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode session snapshot: %w", err)
	}
	return nil
}

// Logout drops every session of subject, not only the presented one.
// The token must still be live, otherwise ErrSessionNotFound is returned.
func (s *Store) Logout(ctx context.Context, subject, token string) error {
	ok, err := s.IsValid(ctx, subject, token)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSessionNotFound
	}

	if err := s.kv.Del(ctx, loginKey(subject)); err != nil {
		return fmt.Errorf("failed to delete sessions of %s: %w", subject, err)
	}
	return nil
}
