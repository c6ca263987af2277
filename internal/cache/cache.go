// Package cache provides an optional Redis-backed cache for processed offer
// results, keyed by a digest of the full pipeline request.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-offers/offer-pipeline-service/internal/domain"
	"github.com/flight-offers/offer-pipeline-service/internal/infrastructure/retry"
	"github.com/flight-offers/offer-pipeline-service/internal/pipeline"
)

// Cache stores processed results keyed by the request that produced them.
type Cache interface {
	Get(ctx context.Context, req pipeline.Request) (*domain.ProcessResult, bool)
	Set(ctx context.Context, req pipeline.Request, result *domain.ProcessResult) error
	Close() error
}

// RedisCache is a Cache backed by a Redis instance.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig holds the Redis connection options.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// DefaultRedisConfig returns the default Redis connection options.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:     "localhost:6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

// NewRedisCache connects to Redis and verifies the connection with a ping,
// retried with backoff so a briefly unavailable instance does not fail
// startup.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := retry.Do(ctx, func() error {
		return client.Ping(ctx).Err()
	}, retry.CacheConfig); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultRedisConfig().TTL
	}

	return &RedisCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Get implements Cache. A miss, a decode failure and a backend error all
// report a plain miss; the caller recomputes.
func (c *RedisCache) Get(ctx context.Context, req pipeline.Request) (*domain.ProcessResult, bool) {
	data, err := c.client.Get(ctx, requestKey(req)).Bytes()
	if err != nil {
		return nil, false
	}

	var result domain.ProcessResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}

	return &result, true
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, req pipeline.Request, result *domain.ProcessResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, requestKey(req), data, c.ttl).Err()
}

// Close implements Cache.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache is a Cache that stores nothing. It is used when caching is
// disabled so callers never need a nil check.
type NoOpCache struct{}

// NewNoOpCache creates a NoOpCache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get implements Cache; it always misses.
func (c *NoOpCache) Get(ctx context.Context, req pipeline.Request) (*domain.ProcessResult, bool) {
	return nil, false
}

// Set implements Cache; it drops the value.
func (c *NoOpCache) Set(ctx context.Context, req pipeline.Request, result *domain.ProcessResult) error {
	return nil
}

// Close implements Cache.
func (c *NoOpCache) Close() error {
	return nil
}

// requestKey derives a stable cache key from the full request, offers
// included, so any change to the input set or the selections produces a
// distinct key.
func requestKey(req pipeline.Request) string {
	data, _ := json.Marshal(struct {
		Offers   []domain.Offer
		Filters  *domain.Filters
		SortBy   domain.SortOption
		Page     int
		PageSize int
	}{
		Offers:   req.Offers,
		Filters:  req.Filters,
		SortBy:   req.SortBy,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	hash := sha256.Sum256(data)
	return "offers:" + hex.EncodeToString(hash[:])
}
