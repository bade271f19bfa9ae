package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cotacao_moedas/internal/feature/chart/adapters/prefstore"
	"cotacao_moedas/internal/feature/chart/adapters/quoteapi"
	"cotacao_moedas/internal/feature/chart/adapters/render"
	"cotacao_moedas/internal/feature/chart/usecase"
	"cotacao_moedas/internal/platform/config"
	infrahttp "cotacao_moedas/internal/platform/http"
)

// NewPreferenceStore creates a PreferenceStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the database.
func NewPreferenceStore(rdb *redis.Client, db *gorm.DB) usecase.PreferenceStore {
	if rdb != nil {
		return prefstore.NewPreferenceRedis(rdb, "pref")
	}
	return prefstore.NewPreferenceGorm(db)
}

// NewQuoteClient creates the dashboard's client for the quotes backend.
func NewQuoteClient(cfg *config.Config) *quoteapi.Client {
	qc := quoteapi.Config{BaseURL: cfg.Dashboard.BackendURL, Timeout: cfg.Dashboard.Timeout}
	return quoteapi.NewClient(qc, infrahttp.NewHTTPClient(qc.Timeout))
}

// NewChartSink creates the go-chart sink drawing into container.
func NewChartSink(cfg *config.Config, container *render.Container) *render.Sink {
	return render.NewSink(container, render.Config{
		Format: render.Format(cfg.Dashboard.ChartFormat),
		Width:  cfg.Dashboard.ChartWidth,
		Height: cfg.Dashboard.ChartHeight,
	})
}
