// Package cache holds the time-boxed page cache for listing responses.
// Entries live in redis under a shared prefix, expire after the
// configured TTL and are otherwise dropped only by an explicit Clear.
// Writes to the data model never invalidate the cache; serving a stale
// listing until expiry is intentional.
package cache

import (
	"fmt"
	"time"

	"miniblog/pkg/config"

	"github.com/go-redis/redis"
)

const keyPrefix = "pagecache:"

type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// InitRedis connects to the configured redis instance.
func InitRedis() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.GlobalConfig.Redis.Addr,
		Password: config.GlobalConfig.Redis.Password,
		DB:       config.GlobalConfig.Redis.DB,
	})
	if err := client.Ping().Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

// Get returns the cached body for key and whether it was present.
func (c *PageCache) Get(key string) ([]byte, bool, error) {
	body, err := c.client.Get(keyPrefix + key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return body, true, nil
}

// Set stores body under key with the cache TTL.
func (c *PageCache) Set(key string, body []byte) error {
	return c.client.Set(keyPrefix+key, body, c.ttl).Err()
}

// Clear drops every cached page. This is the only invalidation besides
// TTL expiry.
func (c *PageCache) Clear() error {
	keys, err := c.client.Keys(keyPrefix + "*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(keys...).Err()
}
