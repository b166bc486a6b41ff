package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// AssetService implements asset CRUD. Updates pass through the role-aware
// field sanitizer before anything is merged into the stored record.
type AssetService struct {
	assets ports.AssetRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewAssetService(assets ports.AssetRepository, users ports.UserRepository, logger zerolog.Logger) *AssetService {
	return &AssetService{assets: assets, users: users, logger: logger}
}

func (s *AssetService) Create(ctx context.Context, input ports.CreateAssetInput) (*ports.AssetDetail, error) {
	asset := &domain.Asset{
		AssetName:    strings.TrimSpace(input.AssetName),
		AssetType:    input.AssetType,
		SerialNumber: strings.TrimSpace(input.SerialNumber),
		Brand:        input.Brand,
		Model:        input.Model,
		PurchaseDate: input.PurchaseDate,
		Condition:    input.Condition,
		Status:       input.Status,
		AssignedTo:   normalizeRef(input.AssignedTo),
		Location:     normalizeRef(input.Location),
	}
	if asset.Condition == "" {
		asset.Condition = domain.DefaultCondition
	}
	if asset.Status == "" {
		asset.Status = domain.DefaultStatus
	}
	if err := validateAsset(asset); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	created, err := s.assets.Create(ctx, asset)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("asset_id", created.ID).Str("serial_number", created.SerialNumber).Msg("asset created")

	return s.resolve(ctx, created)
}

func (s *AssetService) List(ctx context.Context) ([]ports.AssetDetail, error) {
	assets, err := s.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolveAll(ctx, assets)
}

func (s *AssetService) Get(ctx context.Context, id string) (*ports.AssetDetail, error) {
	asset, err := s.assets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, asset)
}

// Update merges a sanitized partial payload into the existing record and
// re-validates it. Fields the caller's role may not write are silently
// dropped, matching the manager field-restriction policy.
func (s *AssetService) Update(ctx context.Context, input ports.UpdateAssetInput) (*ports.AssetDetail, error) {
	asset, err := s.assets.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	fields, dropped := domain.SanitizeAssetUpdate(input.Role, input.Fields)
	if len(dropped) > 0 {
		s.logger.Debug().
			Str("asset_id", input.ID).
			Str("role", input.Role).
			Strs("dropped", dropped).
			Msg("update fields dropped by sanitizer")
	}

	if err := applyAssetFields(asset, fields); err != nil {
		return nil, err
	}
	if err := validateAsset(asset); err != nil {
		return nil, err
	}
	asset.UpdatedAt = time.Now().UTC()

	updated, err := s.assets.Replace(ctx, asset)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, updated)
}

func (s *AssetService) Delete(ctx context.Context, id string) error {
	if err := s.assets.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("asset_id", id).Msg("asset deleted")
	return nil
}

// applyAssetFields merges a sanitized field map into asset. Values are
// checked per field; a wrong type or bad enum value fails the whole update.
func applyAssetFields(asset *domain.Asset, fields map[string]any) error {
	for key, value := range fields {
		switch key {
		case "asset_name":
			v, ok := stringValue(value)
			if !ok || v == "" {
				return domain.NewValidationError("asset_name must be a non-empty string")
			}
			asset.AssetName = v
		case "asset_type":
			v, ok := stringValue(value)
			if !ok || !domain.ValidAssetType(v) {
				return domain.NewValidationError("asset_type is not a valid asset type")
			}
			asset.AssetType = v
		case "serial_number":
			v, ok := stringValue(value)
			if !ok || v == "" {
				return domain.NewValidationError("serial_number must be a non-empty string")
			}
			asset.SerialNumber = v
		case "brand":
			v, ok := stringValue(value)
			if !ok || v == "" {
				return domain.NewValidationError("brand must be a non-empty string")
			}
			asset.Brand = v
		case "model":
			v, ok := stringValue(value)
			if !ok || v == "" {
				return domain.NewValidationError("model must be a non-empty string")
			}
			asset.Model = v
		case "purchase_date":
			v, ok := stringValue(value)
			if !ok {
				return domain.NewValidationError("purchase_date must be a date string")
			}
			t, err := parseDate(v)
			if err != nil {
				return domain.NewValidationError("purchase_date must be an RFC 3339 timestamp or YYYY-MM-DD date")
			}
			asset.PurchaseDate = t
		case "condition":
			v, ok := stringValue(value)
			if !ok || !domain.ValidCondition(v) {
				return domain.NewValidationError("condition is not a valid condition")
			}
			asset.Condition = v
		case "status":
			v, ok := stringValue(value)
			if !ok || !domain.ValidStatus(v) {
				return domain.NewValidationError("status is not a valid status")
			}
			asset.Status = v
		case "assigned_to":
			ref, err := nullableString(value, "assigned_to")
			if err != nil {
				return err
			}
			asset.AssignedTo = ref
		case "location":
			ref, err := nullableString(value, "location")
			if err != nil {
				return err
			}
			asset.Location = ref
		}
	}
	return nil
}

func validateAsset(asset *domain.Asset) error {
	switch {
	case asset.AssetName == "":
		return domain.NewValidationError("asset_name is required")
	case !domain.ValidAssetType(asset.AssetType):
		return domain.NewValidationError("asset_type is not a valid asset type")
	case asset.SerialNumber == "":
		return domain.NewValidationError("serial_number is required")
	case asset.Brand == "":
		return domain.NewValidationError("brand is required")
	case asset.Model == "":
		return domain.NewValidationError("model is required")
	case asset.PurchaseDate.IsZero():
		return domain.NewValidationError("purchase_date is required")
	case !domain.ValidCondition(asset.Condition):
		return domain.NewValidationError("condition is not a valid condition")
	case !domain.ValidStatus(asset.Status):
		return domain.NewValidationError("status is not a valid status")
	}
	return nil
}

// resolve attaches the assigned user's public details. A dangling reference
// resolves to no assignee: assets hold a weak reference only.
func (s *AssetService) resolve(ctx context.Context, asset *domain.Asset) (*ports.AssetDetail, error) {
	detail := &ports.AssetDetail{Asset: *asset}
	if asset.AssignedTo == nil {
		return detail, nil
	}

	user, err := s.users.FindByID(ctx, *asset.AssignedTo)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.Assignee = &ports.AssigneeInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	return detail, nil
}

func (s *AssetService) resolveAll(ctx context.Context, assets []*domain.Asset) ([]ports.AssetDetail, error) {
	details := make([]ports.AssetDetail, 0, len(assets))
	for _, a := range assets {
		d, err := s.resolve(ctx, a)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

// nullableString accepts a string, an explicit null (clears the field), or
// an empty string (also clears).
func nullableString(v any, field string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := stringValue(v)
	if !ok {
		return nil, domain.NewValidationError(field + " must be a string or null")
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

func normalizeRef(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
