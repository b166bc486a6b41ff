package ports

import (
	"context"

	"github.com/assetdesk/inventory-api/internal/core/domain"
)

// SignupInput carries a new account registration.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult is returned on successful signup or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements account registration and login.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
