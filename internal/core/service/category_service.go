package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// CategoryService implements category CRUD.
type CategoryService struct {
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}

	now := time.Now().UTC()
	category := &domain.Category{
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("category_id", created.ID).Str("name", created.Name).Msg("category created")
	return created, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.FindByID(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, input ports.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.categories.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewValidationError("name must not be empty")
		}
		category.Name = name
	}
	if input.Description != nil {
		category.Description = strings.TrimSpace(*input.Description)
	}
	category.UpdatedAt = time.Now().UTC()

	return s.categories.Update(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
