package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis starts an in-process miniredis server and returns a client
// connected to it. The server is shared across scenarios.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisConn
}

// ClearRedis flushes every key so cached forecasts from one scenario do
// not leak into the next.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
