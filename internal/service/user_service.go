package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const registerLockPrefix = "register:"

// UserService registers users and manages their sessions.
type UserService struct {
	repo     UserRepository
	filter   ExistenceFilter
	locker   Locker
	sessions SessionStore
	ids      IDGenerator
	hashCost int
	logger   *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(
	repo UserRepository,
	filter ExistenceFilter,
	locker Locker,
	sessions SessionStore,
	ids IDGenerator,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		repo:     repo,
		filter:   filter,
		locker:   locker,
		sessions: sessions,
		ids:      ids,
		hashCost: bcrypt.DefaultCost,
		logger:   logger,
	}
}

// HasUsername reports whether username is still available.
func (s *UserService) HasUsername(ctx context.Context, username string) (bool, error) {
	present, err := s.filter.MightContain(ctx, username)
	if err != nil {
		return false, fmt.Errorf("failed to check user filter: %w", err)
	}
	return !present, nil
}

// Register creates a user. Concurrent registrations of one username are
// serialized by a non-blocking lock; the loser gets lock.ErrLockBusy.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return model.User{}, ErrInvalidUser
	}

	available, err := s.HasUsername(ctx, username)
	if err != nil {
		return model.User{}, err
	}
	if !available {
		return model.User{}, fmt.Errorf("%s: %w", username, ErrUsernameTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           s.ids.NextID(),
		Username:     username,
		PasswordHash: string(hash),
		RealName:     req.RealName,
		Phone:        req.Phone,
		Mail:         req.Mail,
	}

	err = s.locker.WithLock(ctx, registerLockPrefix+username, func(ctx context.Context) error {
		// a registration that held the lock before us may have finished
		available, err := s.HasUsername(ctx, username)
		if err != nil {
			return err
		}
		if !available {
			return fmt.Errorf("%s: %w", username, ErrUsernameTaken)
		}

		if err := s.repo.InsertUser(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUniqueViolation) {
				return fmt.Errorf("%s: %w", username, ErrUsernameTaken)
			}
			return fmt.Errorf("failed to insert user: %w", err)
		}

		if err := s.filter.Add(ctx, username); err != nil {
			return fmt.Errorf("failed to register username %s: %w", username, err)
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("user registered", zap.String("username", username))

	return user, nil
}

// Login checks the credentials and returns the session token.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.sessions.Login(ctx, username, user.Snapshot())
	if err != nil {
		return "", fmt.Errorf("failed to open session: %w", err)
	}
	return token, nil
}

// GetUser returns the public profile of username.
func (s *UserService) GetUser(ctx context.Context, username string) (model.UserSnapshot, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.UserSnapshot{}, fmt.Errorf("%s: %w", username, ErrUserNotFound)
		}
		return model.UserSnapshot{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user.Snapshot(), nil
}

// Update changes the profile of current. The request must name current
// itself, otherwise ErrUsernameMismatch is returned. Open sessions keep the
// snapshot taken at login.
func (s *UserService) Update(ctx context.Context, current string, req model.UpdateUserRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return ErrInvalidUser
	}
	if username != current {
		return fmt.Errorf("%s updating %s: %w", current, username, ErrUsernameMismatch)
	}

	user := model.User{
		Username: username,
		RealName: req.RealName,
		Phone:    req.Phone,
		Mail:     req.Mail,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", username, ErrUserNotFound)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("user updated", zap.String("username", username))
	return nil
}

// CheckLogin reports whether token is a live session of username.
func (s *UserService) CheckLogin(ctx context.Context, username, token string) (bool, error) {
	return s.sessions.IsValid(ctx, username, token)
}

// Logout drops every session of username. It fails with
// session.ErrSessionNotFound when token is not live.
func (s *UserService) Logout(ctx context.Context, username, token string) error {
	return s.sessions.Logout(ctx, username, token)
}

// WarmUp adds every registered username to the filter.
func (s *UserService) WarmUp(ctx context.Context) (int, error) {
	count := 0
	err := s.repo.ForEachUsername(ctx, func(username string) error {
		if err := s.filter.Add(ctx, username); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("failed to warm up user filter: %w", err)
	}
	return count, nil
}
