package gateway

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// videoCacheTTL bounds how stale a cached upstream batch may be. The
// analytics transforms always recompute from the batch; only the raw fetch
// is cached.
const videoCacheTTL = time.Minute

// Cache is an optional Redis cache-aside for raw upstream responses. With no
// Redis configured (or unreachable) every operation is a no-op.
type Cache struct {
	rdb *redis.Client
}

// NewCache connects to Redis. If redisURL is empty or the connection fails,
// it returns a Cache with a nil client and caching is disabled.
func NewCache(redisURL string) *Cache {
	if redisURL == "" {
		log.Println("redis: no URL configured, response caching disabled")
		return &Cache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, response caching disabled: %v", redisURL, err)
		return &Cache{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, response caching disabled: %v", err)
		return &Cache{}
	}

	log.Println("redis: connected, response caching enabled")
	return &Cache{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *Cache) Client() *redis.Client {
	return c.rdb
}

// Get retrieves a cached response body, or nil on miss/disabled cache.
func (c *Cache) Get(ctx context.Context, key string) []byte {
	if c == nil || c.rdb == nil {
		return nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		cacheMisses.Inc()
		return nil
	}
	cacheHits.Inc()
	return data
}

// Set stores a response body. Failures are ignored: the cache is purely an
// optimization over the upstream fetch.
func (c *Cache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Set(ctx, key, data, ttl).Err()
}

// Close shuts down the Redis connection.
func (c *Cache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
