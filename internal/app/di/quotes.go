package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	quoteadapters "cotacao_moedas/internal/feature/quotes/adapters"
	"cotacao_moedas/internal/feature/quotes/adapters/vatcomply"
	"cotacao_moedas/internal/feature/quotes/usecase"
	"cotacao_moedas/internal/platform/cache"
	"cotacao_moedas/internal/platform/config"
	infrahttp "cotacao_moedas/internal/platform/http"
	"cotacao_moedas/internal/shared/ratelimiter"
)

// NewVatComply creates a fully configured VatComply client with HTTP client.
func NewVatComply(cfg *config.Config) *vatcomply.VatComplyRates {
	vc := vatcomply.Config{BaseURL: cfg.VatComply.BaseURL, Timeout: cfg.VatComply.Timeout}
	return vatcomply.NewVatComplyRates(vc, infrahttp.NewHTTPClient(vc.Timeout))
}

// NewRateLimiter limits VatComply calls to the configured rate per minute.
func NewRateLimiter(cfg *config.Config) *ratelimiter.RateLimiter {
	return ratelimiter.NewRateLimiter(cfg.VatComply.RateLimit, time.Minute)
}

// NewQuoteRepository returns the database repository, wrapped in the Redis cache when rdb is set.
// Cached reads live until the next daily refresh hour.
func NewQuoteRepository(cfg *config.Config, db *gorm.DB, rdb *redis.Client) usecase.QuoteRepository {
	repo := quoteadapters.NewQuoteRepository(db)
	if rdb == nil {
		return repo
	}
	ttl := cache.UntilNextRefresh(cfg.Cache.RefreshHour, cfg.CacheLocation())
	return cache.NewCachingQuoteRepository(rdb, ttl, repo, cfg.Cache.Namespace)
}
