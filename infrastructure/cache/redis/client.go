// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Shares extracted sources across instances so each URL is scraped once per TTL

package redis

import (
	"context"
	"errors"
	"time"

	"summaries-app-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the startup connectivity check
const pingTimeout = 5 * time.Second

// RedisCache implements the Cache interface using Redis. It holds the
// extracted-source entries the scrape service caches under `source:<url>`
// keys, which is why expiry is left entirely to Redis TTLs.
type RedisCache struct {
	client *redis.Client
}

// newOptions maps the service configuration onto go-redis options
func newOptions(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewRedisCache creates a new Redis cache instance and verifies the
// connection before returning, so startup fails fast on a bad address.
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(newOptions(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.New("key not found")
		}
		return nil, err
	}

	return val, nil
}

// Set stores a value in Redis with the given TTL. A zero TTL stores the
// value without expiration.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis. Deleting an absent key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
