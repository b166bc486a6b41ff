package ports

import (
	"context"

	"github.com/assetdesk/inventory-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// UpdateCategoryInput carries a partial category update; nil fields are
// left unchanged.
type UpdateCategoryInput struct {
	ID          string
	Name        *string
	Description *string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
