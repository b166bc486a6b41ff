package domain

import "sort"

// assetFields is the full set of writable asset fields, keyed by wire name.
var assetFields = map[string]struct{}{
	"asset_name":    {},
	"asset_type":    {},
	"serial_number": {},
	"brand":         {},
	"model":         {},
	"purchase_date": {},
	"condition":     {},
	"status":        {},
	"assigned_to":   {},
	"location":      {},
}

// managerFields is the subset of asset fields a manager may write:
// operational state only, never identity or procurement data.
var managerFields = map[string]struct{}{
	"status":      {},
	"assigned_to": {},
	"location":    {},
}

// SanitizeAssetUpdate narrows an update payload to the fields role may
// write. Disallowed and unknown keys are silently dropped, not rejected;
// their names are returned so callers can log the decision. Roles outside
// admin and manager get an empty writable set (the gate rejects them before
// this point, so the branch only matters for direct callers).
func SanitizeAssetUpdate(role string, updates map[string]any) (map[string]any, []string) {
	var writable map[string]struct{}
	switch role {
	case RoleAdmin:
		writable = assetFields
	case RoleManager:
		writable = managerFields
	default:
		writable = nil
	}

	filtered := make(map[string]any, len(updates))
	var dropped []string
	for k, v := range updates {
		if _, ok := writable[k]; ok {
			filtered[k] = v
		} else {
			dropped = append(dropped, k)
		}
	}
	sort.Strings(dropped)
	return filtered, dropped
}
