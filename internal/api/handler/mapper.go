package handler

import (
	"time"

	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// parseDateParam accepts either a full RFC 3339 timestamp or a plain date.
func parseDateParam(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}

func toAssetResponse(d ports.AssetDetail) assetResponse {
	resp := assetResponse{
		ID:           d.Asset.ID,
		AssetName:    d.Asset.AssetName,
		AssetType:    d.Asset.AssetType,
		SerialNumber: d.Asset.SerialNumber,
		Brand:        d.Asset.Brand,
		Model:        d.Asset.Model,
		PurchaseDate: d.Asset.PurchaseDate.UTC(),
		Condition:    d.Asset.Condition,
		Status:       d.Asset.Status,
		Location:     d.Asset.Location,
		CreatedAt:    d.Asset.CreatedAt.UTC(),
		UpdatedAt:    d.Asset.UpdatedAt.UTC(),
	}
	if d.Assignee != nil {
		resp.AssignedTo = &assigneeResponse{
			ID:    d.Assignee.ID,
			Name:  d.Assignee.Name,
			Email: d.Assignee.Email,
			Role:  d.Assignee.Role,
		}
	}
	return resp
}

func toAssetResponses(details []ports.AssetDetail) []assetResponse {
	out := make([]assetResponse, len(details))
	for i, d := range details {
		out[i] = toAssetResponse(d)
	}
	return out
}

func toTypeCounts(groups []ports.GroupCount) []typeCountResponse {
	out := make([]typeCountResponse, len(groups))
	for i, g := range groups {
		out[i] = typeCountResponse{AssetType: g.Key, Count: g.Count}
	}
	return out
}

func toLocationCounts(groups []ports.GroupCount) []locationCountResponse {
	out := make([]locationCountResponse, len(groups))
	for i, g := range groups {
		out[i] = locationCountResponse{Location: g.Key, Count: g.Count}
	}
	return out
}
