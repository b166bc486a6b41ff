package ports

import (
	"context"

	"github.com/assetdesk/inventory-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records.
// The credential store exclusively owns User records; everything else holds
// at most a weak reference by id.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// email is already registered (emails are stored lowercase and unique).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the user including the password hash.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
