package ports

import (
	"context"

	"github.com/assetdesk/inventory-api/internal/core/domain"
)

// GroupCount is one bucket of an aggregation report.
type GroupCount struct {
	Key   string
	Count int64
}

// AssetRepository defines persistence and aggregation operations for assets.
type AssetRepository interface {
	// Create inserts a new asset. Returns domain.ErrDuplicateSerial when
	// the serial number is already taken.
	Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
	FindByID(ctx context.Context, id string) (*domain.Asset, error)
	List(ctx context.Context) ([]*domain.Asset, error)
	// Replace overwrites the stored document with asset (matched by ID).
	// Concurrent updates follow last-writer-wins; there is no version check.
	Replace(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
	Delete(ctx context.Context, id string) error

	// Aggregation reads used by the report service.
	GroupByType(ctx context.Context) ([]GroupCount, error)
	GroupByLocation(ctx context.Context) ([]GroupCount, error)
	FindByStatus(ctx context.Context, status string) ([]*domain.Asset, error)
	// AvailableByTypeBelow groups Available assets by type and keeps only
	// groups whose count is below threshold.
	AvailableByTypeBelow(ctx context.Context, threshold int64) ([]GroupCount, error)
}
