package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

// Memory implements every repository in process memory with the same
// uniqueness rules as the database schema.
type Memory struct {
	mutex      sync.RWMutex
	links      map[string]model.Link
	users      map[string]model.User
	accessLogs map[string]model.AccessLog
	now        func() time.Time
}

// NewMemory creates an empty Memory repository.
func NewMemory() *Memory {
	return &Memory{
		links:      make(map[string]model.Link),
		users:      make(map[string]model.User),
		accessLogs: make(map[string]model.AccessLog),
		now:        time.Now,
	}
}

func (m *Memory) InsertLink(_ context.Context, link model.Link) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.links[link.FullShortURL]; exists {
		return fmt.Errorf("link %s: %w", link.FullShortURL, ErrUniqueViolation)
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = m.now()
	}
	m.links[link.FullShortURL] = link
	return nil
}

func (m *Memory) GetLinkByFullShortURL(_ context.Context, fullShortURL string) (model.Link, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	link, ok := m.links[fullShortURL]
	if !ok {
		return model.Link{}, fmt.Errorf("link %s: %w", fullShortURL, ErrNotFound)
	}
	return link, nil
}

func (m *Memory) ForEachFullShortURL(_ context.Context, fn func(fullShortURL string) error) error {
	return forEachKey(&m.mutex, m.links, fn)
}

func (m *Memory) InsertUser(_ context.Context, user model.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return fmt.Errorf("user %s: %w", user.Username, ErrUniqueViolation)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = m.now()
	}
	m.users[user.Username] = user
	return nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return model.User{}, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	return user, nil
}

func (m *Memory) UpdateUser(_ context.Context, user model.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	stored, ok := m.users[user.Username]
	if !ok {
		return fmt.Errorf("user %s: %w", user.Username, ErrNotFound)
	}
	if user.PasswordHash != "" {
		stored.PasswordHash = user.PasswordHash
	}
	stored.RealName = user.RealName
	stored.Phone = user.Phone
	stored.Mail = user.Mail
	m.users[user.Username] = stored
	return nil
}

func (m *Memory) ForEachUsername(_ context.Context, fn func(username string) error) error {
	return forEachKey(&m.mutex, m.users, fn)
}

func (m *Memory) InsertAccessLog(_ context.Context, log model.AccessLog) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.accessLogs[log.MessageKey]; exists {
		return fmt.Errorf("access log %s: %w", log.MessageKey, ErrUniqueViolation)
	}
	m.accessLogs[log.MessageKey] = log
	return nil
}

// AccessLogs returns the stored visits of fullShortURL.
func (m *Memory) AccessLogs(fullShortURL string) []model.AccessLog {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var logs []model.AccessLog
	for _, log := range m.accessLogs {
		if log.FullShortURL == fullShortURL {
			logs = append(logs, log)
		}
	}
	return logs
}

// forEachKey snapshots the keys first so fn may call back into Memory.
func forEachKey[V any](mutex *sync.RWMutex, items map[string]V, fn func(string) error) error {
	mutex.RLock()
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	mutex.RUnlock()

	for _, key := range keys {
		if err := fn(key); err != nil {
			return err
		}
	}
	return nil
}
