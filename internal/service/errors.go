package service

import "errors"

var (
	// ErrInvalidURL is returned for a destination that is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid origin URL")
	// ErrInvalidDomain is returned when a link has no domain.
	ErrInvalidDomain = errors.New("invalid short link domain")
	// ErrConflictDetected means the database already holds a link the
	// existence filter reported as absent. It is not retried.
	ErrConflictDetected = errors.New("short link conflict detected")
	// ErrLinkNotFound is returned when a short link does not exist.
	ErrLinkNotFound = errors.New("short link not found")

	// ErrInvalidUser is returned for a registration without username or password.
	ErrInvalidUser = errors.New("username and password are required")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is returned for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound is returned when no user has the requested username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameMismatch is returned when a user tries to change another user's profile.
	ErrUsernameMismatch = errors.New("username does not match the logged-in user")
)
