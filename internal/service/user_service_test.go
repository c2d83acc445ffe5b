package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/avc-dev/shortlink/internal/bloom"
	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/avc-dev/shortlink/internal/lock"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type userMocks struct {
	repo     *mocks.MockUserRepository
	filter   *mocks.MockExistenceFilter
	locker   *mocks.MockLocker
	sessions *mocks.MockSessionStore
	ids      *mocks.MockIDGenerator
}

func newUserService(t *testing.T) (*UserService, userMocks) {
	t.Helper()
	m := userMocks{
		repo:     mocks.NewMockUserRepository(t),
		filter:   mocks.NewMockExistenceFilter(t),
		locker:   mocks.NewMockLocker(t),
		sessions: mocks.NewMockSessionStore(t),
		ids:      mocks.NewMockIDGenerator(t),
	}
	svc := NewUserService(m.repo, m.filter, m.locker, m.sessions, m.ids, zap.NewNop())
	svc.hashCost = bcrypt.MinCost
	return svc, m
}

// runLocked makes the mocked locker run fn as if the lock was free.
func runLocked(m userMocks, name string) {
	m.locker.EXPECT().
		WithLock(mock.Anything, name, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Once()
}

func TestUserService_HasUsername(t *testing.T) {
	tests := []struct {
		name      string
		present   bool
		filterErr error
		want      bool
	}{
		{name: "unknown username is available", present: false, want: true},
		{name: "known username is taken", present: true, want: false},
		{name: "filter error", filterErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newUserService(t)
			m.filter.EXPECT().MightContain(mock.Anything, "alice").Return(tt.present, tt.filterErr).Once()

			available, err := svc.HasUsername(context.Background(), "alice")

			if tt.filterErr != nil {
				require.ErrorIs(t, err, tt.filterErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, available)
		})
	}
}

func TestUserService_Register_Success(t *testing.T) {
	// Arrange
	svc, m := newUserService(t)
	req := model.RegisterRequest{Username: "alice", Password: "s3cret", Mail: "alice@example.com"}

	m.filter.EXPECT().MightContain(mock.Anything, "alice").Return(false, nil).Times(2)
	m.ids.EXPECT().NextID().Return(7).Once()
	runLocked(m, "register:alice")
	m.repo.EXPECT().
		InsertUser(mock.Anything, mock.MatchedBy(func(u model.User) bool {
			return u.ID == 7 &&
				u.Username == "alice" &&
				u.Mail == "alice@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
		})).
		Return(nil).
		Once()
	m.filter.EXPECT().Add(mock.Anything, "alice").Return(nil).Once()

	// Act
	user, err := svc.Register(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
}

func TestUserService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  model.RegisterRequest
	}{
		{name: "no username", req: model.RegisterRequest{Password: "s3cret"}},
		{name: "blank username", req: model.RegisterRequest{Username: "   ", Password: "s3cret"}},
		{name: "no password", req: model.RegisterRequest{Username: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserService(t)

			_, err := svc.Register(context.Background(), tt.req)

			require.ErrorIs(t, err, ErrInvalidUser)
		})
	}
}

func TestUserService_Register_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		arrange func(m userMocks)
		wantErr error
	}{
		{
			name: "filter knows the username",
			arrange: func(m userMocks) {
				m.filter.EXPECT().MightContain(mock.Anything, "alice").Return(true, nil).Once()
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name: "lock held by a concurrent registration",
			arrange: func(m userMocks) {
				m.filter.EXPECT().MightContain(mock.Anything, "alice").Return(false, nil).Once()
				m.ids.EXPECT().NextID().Return(7).Once()
				m.locker.EXPECT().
					WithLock(mock.Anything, "register:alice", mock.Anything).
					Return(fmt.Errorf("register:alice: %w", lock.ErrLockBusy)).
					Once()
			},
			wantErr: lock.ErrLockBusy,
		},
		{
			name: "registered while waiting for the lock",
			arrange: func(m userMocks) {
				m.filter.EXPECT().MightContain(mock.Anything, "alice").Return(false, nil).Once()
				m.filter.EXPECT().MightContain(mock.Anything, "alice").Return(true, nil).Once()
				m.ids.EXPECT().NextID().Return(7).Once()
				runLocked(m, "register:alice")
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name: "filter false negative caught by the unique index",
			arrange: func(m userMocks) {
				m.filter.EXPECT().MightContain(mock.Anything, "alice").Return(false, nil).Times(2)
				m.ids.EXPECT().NextID().Return(7).Once()
				runLocked(m, "register:alice")
				m.repo.EXPECT().
					InsertUser(mock.Anything, mock.Anything).
					Return(fmt.Errorf("users_username_key: %w", repository.ErrUniqueViolation)).
					Once()
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name: "database error",
			arrange: func(m userMocks) {
				m.filter.EXPECT().MightContain(mock.Anything, "alice").Return(false, nil).Times(2)
				m.ids.EXPECT().NextID().Return(7).Once()
				runLocked(m, "register:alice")
				m.repo.EXPECT().InsertUser(mock.Anything, mock.Anything).Return(assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc, m := newUserService(t)
			tt.arrange(m)

			// Act
			_, err := svc.Register(context.Background(), model.RegisterRequest{Username: "alice", Password: "s3cret"})

			// Assert
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_Register_Concurrent(t *testing.T) {
	// Arrange
	store := kv.NewMemoryStore(nil)
	filter, err := bloom.NewMemoryFilter(bloom.Sizing{ExpectedInsertions: 1000, FalsePositiveRate: 0.001})
	require.NoError(t, err)
	ids, err := NewSnowflakeIDs(1)
	require.NoError(t, err)
	repo := repository.NewMemory()

	svc := NewUserService(
		repo,
		filter,
		lock.NewLocker(store, 0),
		session.NewStore(store, 0, 0),
		ids,
		zap.NewNop(),
	)
	svc.hashCost = bcrypt.MinCost

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		start     = make(chan struct{})
	)

	// Act
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Register(context.Background(), model.RegisterRequest{Username: "alice", Password: "s3cret"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrUsernameTaken), errors.Is(err, lock.ErrLockBusy):
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	// Assert
	assert.Equal(t, 1, succeeded)
	_, err = repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)

	available, err := svc.HasUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, available)

	token, err := svc.Login(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	valid, err := svc.CheckLogin(context.Background(), "alice", token)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := model.User{ID: 7, Username: "alice", PasswordHash: string(hash), Mail: "alice@example.com"}

	tests := []struct {
		name      string
		password  string
		lookupErr error
		expectSes bool
		sessErr   error
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid credentials",
			password:  "s3cret",
			expectSes: true,
			wantToken: "token-1",
		},
		{
			name:     "wrong password",
			password: "guess",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:      "unknown user",
			password:  "s3cret",
			lookupErr: fmt.Errorf("user alice: %w", repository.ErrNotFound),
			wantErr:   ErrInvalidCredentials,
		},
		{
			name:      "database error",
			password:  "s3cret",
			lookupErr: assert.AnError,
			wantErr:   assert.AnError,
		},
		{
			name:      "session store unavailable",
			password:  "s3cret",
			expectSes: true,
			sessErr:   kv.ErrStoreUnavailable,
			wantErr:   kv.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc, m := newUserService(t)
			m.repo.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(stored, tt.lookupErr).Once()
			if tt.expectSes {
				m.sessions.EXPECT().
					Login(mock.Anything, "alice", stored.Snapshot()).
					Return(tt.wantToken, tt.sessErr).
					Once()
			}

			// Act
			token, err := svc.Login(context.Background(), "alice", tt.password)

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestUserService_CheckLoginAndLogout(t *testing.T) {
	svc, m := newUserService(t)
	m.sessions.EXPECT().IsValid(mock.Anything, "alice", "token-1").Return(true, nil).Once()
	m.sessions.EXPECT().Logout(mock.Anything, "alice", "token-1").Return(nil).Once()
	m.sessions.EXPECT().Logout(mock.Anything, "alice", "token-1").Return(session.ErrSessionNotFound).Once()

	valid, err := svc.CheckLogin(context.Background(), "alice", "token-1")
	require.NoError(t, err)
	assert.True(t, valid)

	require.NoError(t, svc.Logout(context.Background(), "alice", "token-1"))
	require.ErrorIs(t, svc.Logout(context.Background(), "alice", "token-1"), session.ErrSessionNotFound)
}

func TestUserService_WarmUp(t *testing.T) {
	svc, m := newUserService(t)
	m.repo.EXPECT().
		ForEachUsername(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(string) error) error {
			if err := fn("alice"); err != nil {
				return err
			}
			return fn("bob")
		}).
		Once()
	m.filter.EXPECT().Add(mock.Anything, "alice").Return(nil).Once()
	m.filter.EXPECT().Add(mock.Anything, "bob").Return(assert.AnError).Once()

	count, err := svc.WarmUp(context.Background())

	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, count)
}

func TestUserService_GetUser(t *testing.T) {
	tests := []struct {
		name    string
		user    model.User
		repoErr error
		wantErr error
	}{
		{
			name: "found",
			user: model.User{ID: 1, Username: "alice", PasswordHash: "$2a$hash", RealName: "Alice"},
		},
		{
			name:    "unknown user",
			repoErr: fmt.Errorf("user alice: %w", repository.ErrNotFound),
			wantErr: ErrUserNotFound,
		},
		{
			name:    "database error",
			repoErr: assert.AnError,
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc, m := newUserService(t)
			m.repo.EXPECT().GetUserByUsername(mock.Anything, "alice").Return(tt.user, tt.repoErr).Once()

			// Act
			got, err := svc.GetUser(context.Background(), "alice")

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.UserSnapshot{Username: "alice", RealName: "Alice"}, got)
		})
	}
}

func TestUserService_Update(t *testing.T) {
	// Arrange
	svc, m := newUserService(t)
	m.repo.EXPECT().
		UpdateUser(mock.Anything, mock.MatchedBy(func(u model.User) bool {
			return u.Username == "alice" && u.Mail == "new@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("n3w")) == nil
		})).
		Return(nil).
		Once()

	// Act
	err := svc.Update(context.Background(), "alice", model.UpdateUserRequest{
		Username: "alice",
		Password: "n3w",
		Mail:     "new@example.com",
	})

	// Assert
	require.NoError(t, err)
}

func TestUserService_Update_KeepsPassword(t *testing.T) {
	svc, m := newUserService(t)
	m.repo.EXPECT().
		UpdateUser(mock.Anything, model.User{Username: "alice", RealName: "Alice"}).
		Return(nil).
		Once()

	err := svc.Update(context.Background(), "alice", model.UpdateUserRequest{Username: "alice", RealName: "Alice"})

	require.NoError(t, err)
}

func TestUserService_Update_Rejected(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		req        model.UpdateUserRequest
		expectRepo bool
		repoErr    error
		wantErr    error
	}{
		{
			name:    "another user's profile",
			current: "alice",
			req:     model.UpdateUserRequest{Username: "bob", RealName: "Mallory"},
			wantErr: ErrUsernameMismatch,
		},
		{
			name:    "missing username",
			current: "alice",
			req:     model.UpdateUserRequest{RealName: "Alice"},
			wantErr: ErrInvalidUser,
		},
		{
			name:       "user deleted meanwhile",
			current:    "alice",
			req:        model.UpdateUserRequest{Username: "alice"},
			expectRepo: true,
			repoErr:    fmt.Errorf("user alice: %w", repository.ErrNotFound),
			wantErr:    ErrUserNotFound,
		},
		{
			name:       "database error",
			current:    "alice",
			req:        model.UpdateUserRequest{Username: "alice"},
			expectRepo: true,
			repoErr:    assert.AnError,
			wantErr:    assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			svc, m := newUserService(t)
			if tt.expectRepo {
				m.repo.EXPECT().UpdateUser(mock.Anything, mock.Anything).Return(tt.repoErr).Once()
			}

			// Act
			err := svc.Update(context.Background(), tt.current, tt.req)

			// Assert
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
