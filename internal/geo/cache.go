// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Cache stores resolved coordinates. A miss is (zero, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (Coordinates, bool, error)
	Set(ctx context.Context, key string, c Coordinates) error
}

// NopCache never stores anything.
type NopCache struct{}

// Get always misses.
func (NopCache) Get(context.Context, string) (Coordinates, bool, error) {
	return Coordinates{}, false, nil
}

// Set discards c.
func (NopCache) Set(context.Context, string, Coordinates) error { return nil }

// MemoryCache is an in-process TTL cache.
type MemoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache creates a MemoryCache whose entries expire after ttl. A
// ttl of zero keeps entries for the life of the process.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	exp := ttl
	cleanup := ttl * 2
	if ttl <= 0 {
		exp = gocache.NoExpiration
		cleanup = 0
	}
	return &MemoryCache{c: gocache.New(exp, cleanup)}
}

// Get returns the cached coordinates for key.
func (m *MemoryCache) Get(_ context.Context, key string) (Coordinates, bool, error) {
	v, ok := m.c.Get(key)
	if !ok {
		return Coordinates{}, false, nil
	}
	return v.(Coordinates), true, nil
}

// Set stores c under key with the default expiration.
func (m *MemoryCache) Set(_ context.Context, key string, c Coordinates) error {
	m.c.Set(key, c, gocache.DefaultExpiration)
	return nil
}

// RedisCache shares resolved coordinates between dashboard instances.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// ConnectRedis establishes a connection to Redis and pings it.
func ConnectRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisCache stores entries as JSON under "geo:<key>" with the given ttl.
// A ttl of zero never expires.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, prefix: "geo:", ttl: ttl}
}

// Get returns the cached coordinates for key.
func (r *RedisCache) Get(ctx context.Context, key string) (Coordinates, bool, error) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Coordinates{}, false, nil
	}
	if err != nil {
		return Coordinates{}, false, fmt.Errorf("error reading geocode cache: %w", err)
	}

	var c Coordinates
	if err := json.Unmarshal(raw, &c); err != nil {
		return Coordinates{}, false, fmt.Errorf("corrupt geocode cache entry %q: %w", key, err)
	}
	return c, true, nil
}

// Set stores c under key.
func (r *RedisCache) Set(ctx context.Context, key string, c Coordinates) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal coordinates: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("error writing geocode cache: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
