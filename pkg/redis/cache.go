package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// CacheOptions configures a named cache.
type CacheOptions struct {
	// TTL applies to entries when the client config has no TTL for this cache.
	TTL time.Duration
	// RefreshTTL re-arms the TTL every time an entry is read.
	RefreshTTL bool
	// Serializer and Deserializer convert values to and from bytes.
	Serializer   func(any) ([]byte, error)
	Deserializer func([]byte, any) error
	// CacheName prefixes every key and selects the TTL from the client config.
	CacheName string
}

// NewCacheOptions returns options with JSON serialization and a one hour TTL.
func NewCacheOptions() *CacheOptions {
	return &CacheOptions{
		TTL:          1 * time.Hour,
		RefreshTTL:   false,
		Serializer:   json.Marshal,
		Deserializer: json.Unmarshal,
		CacheName:    "",
	}
}

// WithTTL sets the entry TTL. Negative TTLs panic.
func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	if ttl < 0 {
		panic(fmt.Sprintf("invalid TTL: %v, must be non-negative", ttl))
	}
	co.TTL = ttl
	return co
}

// WithRefreshTTL enables TTL refresh on access.
func (co *CacheOptions) WithRefreshTTL(refresh bool) *CacheOptions {
	co.RefreshTTL = refresh
	return co
}

// WithCacheName sets the cache name used for key prefixing and TTL lookup.
func (co *CacheOptions) WithCacheName(cacheName string) *CacheOptions {
	co.CacheName = cacheName
	return co
}

// Cache stores serialized values under namespaced keys with a per-cache TTL.
type Cache struct {
	client *Client
	opts   *CacheOptions
}

// NewCache creates a cache on top of the given client.
func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions()
	}
	return &Cache{
		client: client,
		opts:   opts,
	}
}

// getTTL resolves the TTL: client config by cache name first, then the
// client's default, then the cache options.
func (c *Cache) getTTL() time.Duration {
	if c.opts.CacheName != "" {
		if clientTTL, exists := c.client.config.CacheTTLs[c.opts.CacheName]; exists {
			return clientTTL
		}
		if c.client.config.DefaultCacheTTL > 0 {
			return c.client.config.DefaultCacheTTL
		}
	}
	return c.opts.TTL
}

// buildCacheKey namespaces the key as CacheName::key.
func (c *Cache) buildCacheKey(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// Get retrieves and deserializes a cached value. A missing entry surfaces as
// a deserialization error on the empty payload.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	fullKey := c.buildCacheKey(key)
	data, err := c.client.GetBytes(ctx, fullKey)
	if err != nil {
		return err
	}

	if c.opts.RefreshTTL {
		// Best effort; a failed refresh does not fail the read.
		_ = c.client.Expire(ctx, fullKey, c.getTTL())
	}

	return c.opts.Deserializer(data, dest)
}

// Set serializes and stores a value with the cache's TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	return c.SetWithTTL(ctx, key, value, c.getTTL())
}

// SetWithTTL serializes and stores a value with an explicit TTL.
func (c *Cache) SetWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := c.opts.Serializer(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, ttl)
}

// Delete removes a cached value.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}

// Exists reports whether a key is cached.
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, c.buildCacheKey(key))
	return count > 0, err
}

// Clear removes all entries matching the pattern within this cache's
// namespace.
func (c *Cache) Clear(ctx context.Context, pattern string) error {
	keys, err := c.client.Keys(ctx, c.buildCacheKey(pattern))
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return c.client.Delete(ctx, keys...)
	}
	return nil
}
