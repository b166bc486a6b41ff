package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// UserService implements the admin-only user management operations.
// Role changes take effect on the next token issue; outstanding tokens keep
// their embedded role until they expire.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateRole(ctx context.Context, id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.NewValidationError("role must be one of: admin, manager, viewer")
	}
	updated, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Str("role", role).Msg("user role updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
