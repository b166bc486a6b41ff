package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// AuthService implements signup and login.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" || input.Role == "" {
		return nil, domain.NewValidationError("name, email, password and role are required")
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.NewValidationError("role must be one of: admin, manager, viewer")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")

	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both return domain.ErrInvalidCredentials so the response cannot
// be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")

	return &ports.AuthResult{Token: token, User: user}, nil
}
