// Package cache memoizes scrape results in Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// Cache wraps a Redis client. A zero address disables caching entirely,
// in which case Memoize calls through to the wrapped function.
type Cache struct {
	rdb *redis.Client
	log zerolog.Logger
}

// New creates a cache backed by the Redis server at addr. An empty
// addr returns a disabled cache.
func New(addr string, logger zerolog.Logger) *Cache {
	c := &Cache{log: logger}
	if addr != "" {
		c.rdb = redis.NewClient(&redis.Options{Addr: addr})
	}
	return c
}

// Memoize caches the JSON-encoded result of fn under key for ttl.
// Cache errors degrade to a direct fn call; fn errors are never cached.
func Memoize[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	var result T
	if c == nil || c.rdb == nil {
		return fn()
	}

	cachedData, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		if jsonErr := json.Unmarshal(cachedData, &result); jsonErr == nil {
			return result, nil
		}
	}

	result, err = fn()
	if err != nil {
		return result, err
	}

	cacheData, err := json.Marshal(result)
	if err != nil {
		return result, nil
	}
	if err := c.rdb.Set(ctx, key, cacheData, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("failed to cache result")
	}
	return result, nil
}
