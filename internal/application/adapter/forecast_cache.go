// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// ForecastCache caches forecast generation markers so dashboard views do not
// trigger a full regeneration on every request.
//
// Implementations must never return an error to the caller: backend failures
// are logged and reported as a miss on Get, and silently dropped on Set.
// Correctness never depends on the cache being available.
type ForecastCache interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration)
}
