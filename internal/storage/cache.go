package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/punnatorn6420/Nokair-Platform/infrastructure/logger"
	"github.com/punnatorn6420/Nokair-Platform/internal/metrics"
)

// CacheKeyPrefix namespaces cached layouts in Redis.
const CacheKeyPrefix = "nokair:layout:"

// CachedReader is a read-through Redis cache in front of a LayoutReader.
// Redis failures are logged and fall through to the underlying reader.
type CachedReader struct {
	next    LayoutReader
	client  *redis.Client
	ttl     time.Duration
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewCachedReader wraps next. A nil client disables caching.
func NewCachedReader(next LayoutReader, client *redis.Client, ttl time.Duration, log logger.Logger, m *metrics.Metrics) *CachedReader {
	return &CachedReader{next: next, client: client, ttl: ttl, log: log, metrics: m}
}

func cacheKey(slug string) string {
	return CacheKeyPrefix + slug
}

// Get returns the cached document, filling the cache on a miss. Missing
// documents are not cached.
func (c *CachedReader) Get(ctx context.Context, slug string) ([]byte, error) {
	if c.client != nil {
		data, err := c.client.Get(ctx, cacheKey(slug)).Bytes()
		switch {
		case err == nil:
			c.metrics.LayoutRead(metrics.SourceCache)
			return data, nil
		case !errors.Is(err, redis.Nil):
			c.log.Warn("Layout cache read failed",
				logger.String("slug", slug),
				logger.Error(err),
			)
		}
	}

	data, err := c.next.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	c.metrics.LayoutRead(metrics.SourceDatabase)

	if c.client != nil {
		if setErr := c.client.Set(ctx, cacheKey(slug), data, c.ttl).Err(); setErr != nil {
			c.log.Warn("Layout cache write failed",
				logger.String("slug", slug),
				logger.Error(setErr),
			)
		}
	}
	return data, nil
}

// Invalidate drops slug from the cache.
func (c *CachedReader) Invalidate(ctx context.Context, slug string) error {
	return Invalidate(ctx, c.client, slug)
}

// Invalidate drops slug from the layout cache held in client. A nil client
// is a no-op.
func Invalidate(ctx context.Context, client *redis.Client, slug string) error {
	if client == nil {
		return nil
	}
	if err := client.Del(ctx, cacheKey(slug)).Err(); err != nil {
		return fmt.Errorf("invalidate layout cache %s: %w", slug, err)
	}
	return nil
}
