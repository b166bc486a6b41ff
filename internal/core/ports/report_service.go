package ports

import "context"

// ReportCache provides short-lived caching for report payloads.
// Entries expire by TTL; mutations do not invalidate them, so reports may
// lag the store by up to one TTL.
type ReportCache interface {
	// Get unmarshals the cached entry for key into dest and reports whether
	// an entry was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// ReportService defines the aggregation reads. All reports are pure reads:
// no mutation, no authorization state beyond the gate.
type ReportService interface {
	AssetsByType(ctx context.Context) ([]GroupCount, error)
	AssetsByLocation(ctx context.Context) ([]GroupCount, error)
	DamagedAssets(ctx context.Context) ([]AssetDetail, error)
	// LowStock groups Available assets by type and keeps groups below
	// threshold. A threshold <= 0 falls back to the default of 5.
	LowStock(ctx context.Context, threshold int64) ([]GroupCount, error)
}
