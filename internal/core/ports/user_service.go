package ports

import (
	"context"

	"github.com/assetdesk/inventory-api/internal/core/domain"
)

// UserService defines the admin-only user management operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
