// internal/chat/cache.go
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"ecommerce-chatbot/internal/common/database"

	"github.com/redis/go-redis/v9"
)

// Cache stores generated responses keyed by message. A miss is ("", nil);
// any cache failure is reported as an error the service treats as a miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}

// RedisCache adapts the shared Redis client to the Cache interface.
type RedisCache struct {
	client *database.RedisClient
}

func NewRedisCache(client *database.RedisClient) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl)
}

// cacheKey normalizes the message the same way the resolver does, so two
// casings of one question share a cache entry.
func cacheKey(message string) string {
	return "chat:response:" + strings.ToLower(message)
}
