// Package cache provides the optional Redis client used by the listing cache
// middleware. When Redis is unconfigured or unreachable the client is nil and
// callers degrade gracefully by serving uncached.
package cache

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient instantiates a Redis client from environment variables:
// REDIS_ADDR (host:port), REDIS_PASSWORD, REDIS_DB. Returns nil when no
// address is configured or the server does not answer a ping within two
// seconds.
func NewClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	dbNum := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if n, err := strconv.Atoi(dbStr); err == nil {
			dbNum = n
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
