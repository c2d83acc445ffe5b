package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/avc-dev/shortlink/internal/lock"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/session"
	"github.com/avc-dev/shortlink/internal/shortcode"
	"go.uber.org/zap"
)

//go:generate mockery --name LinkService

// LinkService creates and resolves short links.
type LinkService interface {
	Create(ctx context.Context, req model.CreateLinkRequest) (model.Link, error)
	Resolve(ctx context.Context, domain, code string, visit model.Visit) (model.Link, error)
}

//go:generate mockery --name UserService

// UserService registers users and manages their sessions.
type UserService interface {
	HasUsername(ctx context.Context, username string) (bool, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	CheckLogin(ctx context.Context, username, token string) (bool, error)
	Logout(ctx context.Context, username, token string) error
	GetUser(ctx context.Context, username string) (model.UserSnapshot, error)
	Update(ctx context.Context, current string, req model.UpdateUserRequest) error
}

// Pinger checks a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	links   LinkService
	users   UserService
	logger  *zap.Logger
	db      Pinger
	baseURL config.URLPrefix
}

// New creates a Handler. db may be nil when no database is configured.
func New(links LinkService, users UserService, logger *zap.Logger, db Pinger, baseURL config.URLPrefix) *Handler {
	return &Handler{
		links:   links,
		users:   users,
		logger:  logger,
		db:      db,
		baseURL: baseURL,
	}
}

// handleError maps domain errors to HTTP status codes.
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, service.ErrInvalidDomain),
		errors.Is(err, service.ErrInvalidUser):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrLinkNotFound),
		errors.Is(err, service.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrUsernameMismatch):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrConflictDetected),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, lock.ErrLockBusy):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, session.ErrSessionNotFound):
		status = http.StatusUnauthorized
	case errors.Is(err, shortcode.ErrGenerationExhausted),
		errors.Is(err, kv.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
		message = http.StatusText(status)
	} else {
		h.logger.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}

	h.writeJSON(w, status, ErrorResponse{Error: message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}
