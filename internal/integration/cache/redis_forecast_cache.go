// Package cache implements the forecast cache on Redis.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/forecast/internal/application/adapter"
)

// redisForecastCache implements adapter.ForecastCache on a Redis client.
// Backend failures are logged and reported as a miss; they never reach the
// caller, so forecast generation keeps working with Redis down.
type redisForecastCache struct {
	client *redis.Client
}

// NewRedisForecastCache creates a new Redis-backed forecast cache.
func NewRedisForecastCache(client *redis.Client) adapter.ForecastCache {
	return &redisForecastCache{
		client: client,
	}
}

// Get returns the cached value for key and whether it was present.
func (c *redisForecastCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("forecast cache get failed", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

// Set stores value under key with the given TTL.
func (c *redisForecastCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Warn("forecast cache set failed", "key", key, "error", err)
	}
}
