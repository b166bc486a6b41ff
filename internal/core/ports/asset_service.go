package ports

import (
	"context"
	"time"

	"github.com/assetdesk/inventory-api/internal/core/domain"
)

// CreateAssetInput carries all data needed to create a new asset.
// Condition and Status default when empty.
type CreateAssetInput struct {
	AssetName    string
	AssetType    string
	SerialNumber string
	Brand        string
	Model        string
	PurchaseDate time.Time
	Condition    string
	Status       string
	AssignedTo   *string
	Location     *string
}

// UpdateAssetInput carries a partial update as a field-name → value mapping,
// together with the caller role the sanitizer filters by.
type UpdateAssetInput struct {
	ID     string
	Role   string
	Fields map[string]any
}

// AssigneeInfo is the resolved view of an asset's assigned user.
type AssigneeInfo struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// AssetDetail is an asset with its assigned-user reference resolved.
// Assignee is nil when the asset is unassigned or the referenced user no
// longer exists (weak reference).
type AssetDetail struct {
	Asset    domain.Asset
	Assignee *AssigneeInfo
}

// AssetService defines use-case operations for assets.
type AssetService interface {
	Create(ctx context.Context, input CreateAssetInput) (*AssetDetail, error)
	List(ctx context.Context) ([]AssetDetail, error)
	Get(ctx context.Context, id string) (*AssetDetail, error)
	Update(ctx context.Context, input UpdateAssetInput) (*AssetDetail, error)
	Delete(ctx context.Context, id string) error
}
