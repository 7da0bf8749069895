package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultStatsTTL = 5 * time.Minute

// StatsCache caches dashboard and analytics payloads as JSON with a TTL.
// Key format: stats:<name>
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache wraps the given Redis client. A non-positive ttl falls back
// to the default of five minutes.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get unmarshals the cached payload into dest. A missing key is reported as
// (false, nil).
func (c *StatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("stats cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("stats cache decode: %w", err)
	}
	return true, nil
}

// Set stores value as JSON under the key, expiring after the configured TTL.
func (c *StatsCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(key), raw, c.ttl).Err()
}

func (c *StatsCache) key(k string) string {
	return "stats:" + k
}
