package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultReportTTL = time.Minute

// ReportCache stores report payloads as TTL'd JSON entries. Entries are
// never invalidated by mutations; staleness is bounded by the TTL alone.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache wraps the given Redis client. A non-positive ttl falls
// back to one minute.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = defaultReportTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Get unmarshals the cached entry for key into dest and reports whether an
// entry was found.
func (c *ReportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("report cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("report cache decode: %w", err)
	}
	return true, nil
}

// Set stores value under key, expiring after the configured TTL.
func (c *ReportCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("report cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}
