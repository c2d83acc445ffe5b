package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/avc-dev/shortlink/internal/mocks"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestUserTransmit(t *testing.T) {
	alice := model.UserSnapshot{Username: "alice", Mail: "alice@example.com"}

	tests := []struct {
		name       string
		username   string
		token      string
		storeErr   error
		expectLoad bool
		wantStatus int
		wantUser   bool
	}{
		{
			name:       "live session",
			username:   "alice",
			token:      "token-1",
			expectLoad: true,
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:       "missing token",
			username:   "alice",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing username",
			token:      "token-1",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired session",
			username:   "alice",
			token:      "token-1",
			storeErr:   session.ErrSessionNotFound,
			expectLoad: true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "store unavailable",
			username:   "alice",
			token:      "token-1",
			storeErr:   fmt.Errorf("failed to load session of alice: %w", kv.ErrStoreUnavailable),
			expectLoad: true,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "undecodable snapshot",
			username:   "alice",
			token:      "token-1",
			storeErr:   assert.AnError,
			expectLoad: true,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			sessions := mocks.NewMockSessionReader(t)
			if tt.expectLoad {
				sessions.EXPECT().
					Snapshot(mock.Anything, tt.username, tt.token, mock.Anything).
					RunAndReturn(func(_ context.Context, _, _ string, dst any) error {
						if tt.storeErr != nil {
							return tt.storeErr
						}
						*dst.(*model.UserSnapshot) = alice
						return nil
					}).
					Once()
			}

			var (
				gotUser model.UserSnapshot
				hasUser bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, hasUser = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodDelete, "/api/short-link/admin/v1/user/logout", nil)
			if tt.username != "" {
				req.Header.Set(HeaderUsername, tt.username)
			}
			if tt.token != "" {
				req.Header.Set(HeaderToken, tt.token)
			}
			w := httptest.NewRecorder()

			// Act
			UserTransmit(sessions, zap.NewNop())(next).ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantUser, hasUser)
			if tt.wantUser {
				assert.Equal(t, alice, gotUser)
			}
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
}
