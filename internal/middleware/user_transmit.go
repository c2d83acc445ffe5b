package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/session"
	"go.uber.org/zap"
)

// Request headers carrying the caller's identity.
const (
	HeaderUsername = "username"
	HeaderToken    = "token"
)

type userContextKey struct{}

//go:generate mockery --name SessionReader

// SessionReader loads the snapshot stored with a live session.
type SessionReader interface {
	Snapshot(ctx context.Context, subject, token string, dst any) error
}

// UserTransmit admits only requests carrying a live session in the
// username and token headers and puts the session's user snapshot into
// the request context.
func UserTransmit(sessions SessionReader, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := r.Header.Get(HeaderUsername)
			token := r.Header.Get(HeaderToken)
			if username == "" || token == "" {
				http.Error(w, "user is not logged in", http.StatusUnauthorized)
				return
			}

			var user model.UserSnapshot
			err := sessions.Snapshot(r.Context(), username, token, &user)
			switch {
			case err == nil:
			case errors.Is(err, session.ErrSessionNotFound):
				http.Error(w, "user is not logged in", http.StatusUnauthorized)
				return
			case errors.Is(err, kv.ErrStoreUnavailable):
				logger.Error("session store unavailable", zap.Error(err))
				http.Error(w, "session store unavailable", http.StatusServiceUnavailable)
				return
			default:
				logger.Error("failed to load session", zap.String("username", username), zap.Error(err))
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the snapshot stored by UserTransmit.
func UserFromContext(ctx context.Context) (model.UserSnapshot, bool) {
	user, ok := ctx.Value(userContextKey{}).(model.UserSnapshot)
	return user, ok
}
