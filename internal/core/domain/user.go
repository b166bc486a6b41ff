package domain

import (
	"errors"
	"time"
)

// Roles form a fixed three-tier capability set; they are not extensible at runtime.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleViewer
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers malformed, forged and expired tokens alike.
	ErrInvalidToken = errors.New("invalid or missing token")
	ErrForbidden    = errors.New("access forbidden")
	// ErrMissingSecret is fatal at startup: the process must not serve
	// requests without a signing secret.
	ErrMissingSecret = errors.New("jwt signing secret is not configured")
)

// User models an authenticated actor in the system.
// PasswordHash is write-only: it never appears in a serialized payload.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
