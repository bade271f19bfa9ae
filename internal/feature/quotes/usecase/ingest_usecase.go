package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cotacao_moedas/internal/shared/ratelimiter"
)

// DefaultIngestDays is how many business days one ingest run covers.
const DefaultIngestDays = 5

// IngestUsecase copies recent rates from the external source into storage.
type IngestUsecase struct {
	rates   RatesProvider
	repo    QuoteRepository
	limiter ratelimiter.Limiter
}

// NewIngestUsecase creates a new IngestUsecase.
func NewIngestUsecase(rates RatesProvider, repo QuoteRepository, limiter ratelimiter.Limiter) *IngestUsecase {
	return &IngestUsecase{rates: rates, repo: repo, limiter: limiter}
}

// IngestRecent fetches the last days business days up to today and upserts them.
// It returns how many quotes were stored.
func (iu *IngestUsecase) IngestRecent(ctx context.Context, today time.Time, days int) (int, error) {
	if days <= 0 {
		days = DefaultIngestDays
	}
	quotes, err := fetchDays(ctx, iu.rates, iu.limiter, lastBusinessDays(today, days))
	if err != nil {
		return 0, err
	}
	if len(quotes) == 0 {
		slog.Warn("ingest found no rates", "days", days)
		return 0, nil
	}
	if err := iu.repo.UpsertBatch(ctx, quotes); err != nil {
		return 0, fmt.Errorf("store ingested quotes: %w", err)
	}
	slog.Info("ingest stored quotes", "count", len(quotes))
	return len(quotes), nil
}
