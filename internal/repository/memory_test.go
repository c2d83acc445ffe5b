package repository

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_InsertLink(t *testing.T) {
	tests := []struct {
		name    string
		seed    []model.Link
		insert  model.Link
		wantErr error
	}{
		{
			name:   "new link",
			insert: model.Link{ID: 1, FullShortURL: "short.ly/abc1234", OriginURL: "https://example.com"},
		},
		{
			name:    "duplicate full short url",
			seed:    []model.Link{{ID: 1, FullShortURL: "short.ly/abc1234"}},
			insert:  model.Link{ID: 2, FullShortURL: "short.ly/abc1234"},
			wantErr: ErrUniqueViolation,
		},
		{
			name:   "same code on another domain",
			seed:   []model.Link{{ID: 1, FullShortURL: "short.ly/abc1234"}},
			insert: model.Link{ID: 2, FullShortURL: "other.ly/abc1234"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			repo := NewMemory()
			ctx := context.Background()
			for _, link := range tt.seed {
				require.NoError(t, repo.InsertLink(ctx, link))
			}

			// Act
			err := repo.InsertLink(ctx, tt.insert)

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			got, err := repo.GetLinkByFullShortURL(ctx, tt.insert.FullShortURL)
			require.NoError(t, err)
			assert.Equal(t, tt.insert.ID, got.ID)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestMemory_GetLinkNotFound(t *testing.T) {
	repo := NewMemory()

	_, err := repo.GetLinkByFullShortURL(context.Background(), "short.ly/missing")

	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Users(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	require.NoError(t, repo.InsertUser(ctx, model.User{ID: 1, Username: "alice", PasswordHash: "hash"}))
	err := repo.InsertUser(ctx, model.User{ID: 2, Username: "alice"})
	require.ErrorIs(t, err, ErrUniqueViolation)

	user, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "hash", user.PasswordHash)

	_, err = repo.GetUserByUsername(ctx, "bob")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_UpdateUser(t *testing.T) {
	tests := []struct {
		name     string
		update   model.User
		wantErr  error
		wantHash string
	}{
		{
			name:     "profile and password",
			update:   model.User{Username: "alice", PasswordHash: "new-hash", RealName: "Alice", Mail: "a@example.com"},
			wantHash: "new-hash",
		},
		{
			name:     "empty password keeps the stored hash",
			update:   model.User{Username: "alice", RealName: "Alice", Mail: "a@example.com"},
			wantHash: "hash",
		},
		{
			name:    "unknown user",
			update:  model.User{Username: "bob"},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			repo := NewMemory()
			ctx := context.Background()
			require.NoError(t, repo.InsertUser(ctx, model.User{ID: 1, Username: "alice", PasswordHash: "hash", Phone: "123"}))

			// Act
			err := repo.UpdateUser(ctx, tt.update)

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			got, err := repo.GetUserByUsername(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.ID)
			assert.Equal(t, tt.wantHash, got.PasswordHash)
			assert.Equal(t, "Alice", got.RealName)
			assert.Equal(t, "a@example.com", got.Mail)
			assert.Empty(t, got.Phone)
		})
	}
}

func TestMemory_ForEach(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	require.NoError(t, repo.InsertLink(ctx, model.Link{ID: 1, FullShortURL: "short.ly/a"}))
	require.NoError(t, repo.InsertLink(ctx, model.Link{ID: 2, FullShortURL: "short.ly/b"}))
	require.NoError(t, repo.InsertUser(ctx, model.User{ID: 1, Username: "alice"}))

	var links []string
	require.NoError(t, repo.ForEachFullShortURL(ctx, func(key string) error {
		links = append(links, key)
		return nil
	}))
	sort.Strings(links)
	assert.Equal(t, []string{"short.ly/a", "short.ly/b"}, links)

	var users []string
	require.NoError(t, repo.ForEachUsername(ctx, func(name string) error {
		users = append(users, name)
		return nil
	}))
	assert.Equal(t, []string{"alice"}, users)

	stop := errors.New("stop")
	err := repo.ForEachFullShortURL(ctx, func(string) error { return stop })
	require.ErrorIs(t, err, stop)
}

func TestMemory_InsertAccessLog(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()
	log := model.AccessLog{
		MessageKey:   "key-1",
		FullShortURL: "short.ly/abc1234",
		OccurredAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.InsertAccessLog(ctx, log))
	err := repo.InsertAccessLog(ctx, log)
	require.ErrorIs(t, err, ErrUniqueViolation)

	assert.Equal(t, []model.AccessLog{log}, repo.AccessLogs("short.ly/abc1234"))
	assert.Empty(t, repo.AccessLogs("short.ly/other"))
}
