package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is the read-side cache for tenant profiles and menus. Entries
// expire after the stale window; a cold or unreachable cache only means a
// direct upstream fetch.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) RestaurantKey(subdomain string) string {
	return "restaurant:" + subdomain
}

func (c *RedisCache) MenuKey(subdomain string) string {
	return "menu:" + subdomain
}

// GetJSON loads a cached value into out. The boolean reports whether the key
// was present.
func (c *RedisCache) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores a value under the cache TTL.
func (c *RedisCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, c.TTL).Err()
}
