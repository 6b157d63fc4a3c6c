package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, client
}

func TestRedisForecastCache_SetAndGet(t *testing.T) {
	_, client := newTestCache(t)
	forecastCache := NewRedisForecastCache(client)
	ctx := context.Background()

	key := "forecasts:user-1:6:12"
	forecastCache.Set(ctx, key, "2025-06-15T12:00:00Z", 10*time.Minute)

	value, hit := forecastCache.Get(ctx, key)
	if !hit {
		t.Fatal("expected a cache hit after Set")
	}
	if value != "2025-06-15T12:00:00Z" {
		t.Errorf("Get() = %q, want the stored value", value)
	}
}

func TestRedisForecastCache_MissForUnknownKey(t *testing.T) {
	_, client := newTestCache(t)
	forecastCache := NewRedisForecastCache(client)

	if _, hit := forecastCache.Get(context.Background(), "forecasts:unknown:0:0"); hit {
		t.Error("expected a miss for an unknown key")
	}
}

func TestRedisForecastCache_TTLExpiry(t *testing.T) {
	server, client := newTestCache(t)
	forecastCache := NewRedisForecastCache(client)
	ctx := context.Background()

	key := "forecasts:user-1:6:12"
	forecastCache.Set(ctx, key, "marker", time.Minute)

	server.FastForward(2 * time.Minute)

	if _, hit := forecastCache.Get(ctx, key); hit {
		t.Error("expected a miss after the TTL elapsed")
	}
}

func TestRedisForecastCache_BackendDownDegradesToMiss(t *testing.T) {
	server, client := newTestCache(t)
	forecastCache := NewRedisForecastCache(client)
	ctx := context.Background()

	forecastCache.Set(ctx, "key", "value", time.Minute)
	server.Close()

	// Neither call may return an error to the caller; Get reports a miss
	// and Set is dropped.
	if _, hit := forecastCache.Get(ctx, "key"); hit {
		t.Error("expected a miss with the backend down")
	}
	forecastCache.Set(ctx, "key", "value", time.Minute)
}
