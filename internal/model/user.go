package model

import "time"

// User is a registered account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	RealName     string
	Phone        string
	Mail         string
	CreatedAt    time.Time
}

// Snapshot returns the part of the user kept with a session.
func (u User) Snapshot() UserSnapshot {
	return UserSnapshot{
		Username: u.Username,
		RealName: u.RealName,
		Phone:    u.Phone,
		Mail:     u.Mail,
	}
}

// UserSnapshot is the session payload. It never carries the password hash.
type UserSnapshot struct {
	Username string `json:"username"`
	RealName string `json:"realName"`
	Phone    string `json:"phone"`
	Mail     string `json:"mail"`
}

// RegisterRequest is the body of a registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RealName string `json:"realName"`
	Phone    string `json:"phone"`
	Mail     string `json:"mail"`
}

// UpdateUserRequest is the body of a profile update. An empty Password
// keeps the current one.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RealName string `json:"realName"`
	Phone    string `json:"phone"`
	Mail     string `json:"mail"`
}

// LoginRequest is the body of a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token.
type LoginResponse struct {
	Token string `json:"token"`
}
