package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// InitRedis connects to Redis if an address is configured. The cache is
// best-effort: when the connection fails the app keeps running and every
// lookup falls through to the store.
func InitRedis(addr string, logger *slog.Logger) {
	if addr == "" {
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis connection failed, continuing without cache", "error", err)
		Client = nil
	} else {
		logger.Info("Redis connected successfully")
	}
}

func Close() {
	if Client != nil {
		_ = Client.Close()
		Client = nil
	}
}
