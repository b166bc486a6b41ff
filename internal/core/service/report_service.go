package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

// DefaultLowStockThreshold applies when the caller supplies no threshold.
const DefaultLowStockThreshold = 5

const (
	cacheKeyByType     = "reports:assets_by_type"
	cacheKeyByLocation = "reports:assets_by_location"
	cacheKeyDamaged    = "reports:damaged_assets"
)

// ReportService implements the aggregation reports with a cache-aside read
// path. Cache entries expire by TTL only; a report may lag mutations by up
// to one TTL. A nil cache disables caching entirely.
type ReportService struct {
	assets ports.AssetRepository
	users  ports.UserRepository
	cache  ports.ReportCache
	logger zerolog.Logger
}

func NewReportService(assets ports.AssetRepository, users ports.UserRepository, cache ports.ReportCache, logger zerolog.Logger) *ReportService {
	return &ReportService{assets: assets, users: users, cache: cache, logger: logger}
}

func (s *ReportService) AssetsByType(ctx context.Context) ([]ports.GroupCount, error) {
	return s.cachedGroups(ctx, cacheKeyByType, s.assets.GroupByType)
}

func (s *ReportService) AssetsByLocation(ctx context.Context) ([]ports.GroupCount, error) {
	return s.cachedGroups(ctx, cacheKeyByLocation, s.assets.GroupByLocation)
}

func (s *ReportService) DamagedAssets(ctx context.Context) ([]ports.AssetDetail, error) {
	if s.cache != nil {
		var cached []ports.AssetDetail
		if found, err := s.cache.Get(ctx, cacheKeyDamaged, &cached); err != nil {
			s.logger.Warn().Err(err).Str("key", cacheKeyDamaged).Msg("report cache read failed")
		} else if found {
			return cached, nil
		}
	}

	assets, err := s.assets.FindByStatus(ctx, domain.StatusDamaged)
	if err != nil {
		return nil, err
	}

	details := make([]ports.AssetDetail, 0, len(assets))
	for _, a := range assets {
		detail := ports.AssetDetail{Asset: *a}
		if a.AssignedTo != nil {
			user, err := s.users.FindByID(ctx, *a.AssignedTo)
			if err == nil {
				detail.Assignee = &ports.AssigneeInfo{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
			}
		}
		details = append(details, detail)
	}

	s.cachePut(ctx, cacheKeyDamaged, details)
	return details, nil
}

// LowStock is intentionally uncached: the threshold is caller-supplied, so
// a cache keyed per threshold would fragment without bounded cardinality.
func (s *ReportService) LowStock(ctx context.Context, threshold int64) ([]ports.GroupCount, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return s.assets.AvailableByTypeBelow(ctx, threshold)
}

func (s *ReportService) cachedGroups(ctx context.Context, key string, fetch func(context.Context) ([]ports.GroupCount, error)) ([]ports.GroupCount, error) {
	if s.cache != nil {
		var cached []ports.GroupCount
		if found, err := s.cache.Get(ctx, key, &cached); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("report cache read failed")
		} else if found {
			return cached, nil
		}
	}

	groups, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, key, groups)
	return groups, nil
}

// cachePut writes best-effort: a cache failure never fails the report.
func (s *ReportService) cachePut(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
}
