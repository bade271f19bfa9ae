// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"cotacao_moedas/internal/feature/quotes/domain/entity"
	"cotacao_moedas/internal/feature/quotes/usecase"
)

// TTLFunc returns the lifetime of an entry written now.
type TTLFunc func() time.Duration

// FixedTTL returns a TTLFunc that always yields d.
func FixedTTL(d time.Duration) TTLFunc {
	return func() time.Duration { return d }
}

// CachingQuoteRepository decorates a QuoteRepository with Redis caching of reads.
// Any write invalidates every cached read of the namespace.
type CachingQuoteRepository struct {
	inner     usecase.QuoteRepository
	rdb       *redis.Client
	ttl       TTLFunc
	namespace string
}

var _ usecase.QuoteRepository = (*CachingQuoteRepository)(nil)

// NewCachingQuoteRepository decorates inner. A nil ttl caches for 5 minutes; an empty namespace uses "cotacoes".
func NewCachingQuoteRepository(rdb *redis.Client, ttl TTLFunc, inner usecase.QuoteRepository, namespace string) *CachingQuoteRepository {
	if ttl == nil {
		ttl = FixedTTL(5 * time.Minute)
	}
	if namespace == "" {
		namespace = "cotacoes"
	}
	return &CachingQuoteRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// UpsertBatch writes through to the inner repository and drops cached reads.
func (c *CachingQuoteRepository) UpsertBatch(ctx context.Context, quotes []entity.Quote) error {
	if err := c.inner.UpsertBatch(ctx, quotes); err != nil {
		return err
	}
	if c.rdb == nil || len(quotes) == 0 {
		return nil
	}
	// Best effort: a stale entry expires with its TTL anyway
	if err := c.deleteByPattern(ctx, c.namespace+":*"); err != nil {
		slog.Warn("failed to invalidate quote cache", "namespace", c.namespace, "error", err)
	}
	return nil
}

func (c *CachingQuoteRepository) FindRange(ctx context.Context, start, end time.Time) ([]entity.Quote, error) {
	key := c.cacheKey("range", start.Format(usecase.DateLayout), end.Format(usecase.DateLayout))
	return c.cached(ctx, key, func() ([]entity.Quote, error) {
		return c.inner.FindRange(ctx, start, end)
	})
}

func (c *CachingQuoteRepository) FindLatest(ctx context.Context, limit int) ([]entity.Quote, error) {
	return c.cached(ctx, c.cacheKey("latest", fmt.Sprint(limit)), func() ([]entity.Quote, error) {
		return c.inner.FindLatest(ctx, limit)
	})
}

// cached returns the entry under key, or loads it and stores it.
func (c *CachingQuoteRepository) cached(ctx context.Context, key string, load func() ([]entity.Quote, error)) ([]entity.Quote, error) {
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Quote
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort). Empty results are not cached.
	if len(out) > 0 {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, c.ttl()).Err()
		}
	}
	return out, nil
}

func (c *CachingQuoteRepository) cacheKey(parts ...string) string {
	for i, p := range parts {
		parts[i] = safe(p)
	}
	return c.namespace + ":" + strings.Join(parts, ":")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingQuoteRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
