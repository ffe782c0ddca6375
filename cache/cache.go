package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"MediBuddy/database"
)

// Cache wraps the Redis client behind the durable key-value slots the
// portal uses (session snapshots, theme preferences).
type Cache struct {
	client *redis.Client
}

// NewCache creates a new Cache instance, ensuring that RedisClient is not nil.
func NewCache() (*Cache, error) {
	if database.RedisClient == nil {
		return nil, errors.New("Redis client is not initialized")
	}
	return &Cache{client: database.RedisClient}, nil
}

// Set writes a slot. A zero expiration means the slot never expires.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if c.client == nil {
		return errors.New("Redis client is not initialized")
	}
	return c.client.Set(ctx, key, value, expiration).Err()
}

// Get reads a slot. A missing key is not an error: it returns "".
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if c.client == nil {
		return "", errors.New("Redis client is not initialized")
	}
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil // key does not exist
	}
	return val, err
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if c.client == nil {
		return errors.New("Redis client is not initialized")
	}
	return c.client.Del(ctx, key).Err()
}
