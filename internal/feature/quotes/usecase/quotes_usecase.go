// Package usecase implements the quote lookups served by the API.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"cotacao_moedas/internal/feature/quotes/domain/entity"
	"cotacao_moedas/internal/shared/ratelimiter"
)

const (
	// DefaultMaxPeriodDays is the widest live period, in calendar days between start and end.
	DefaultMaxPeriodDays = 6
	// LatestStoredLimit is how many stored quotes are returned when no period is given.
	LatestStoredLimit = 30
)

// RatesProvider fetches the rates of one day from the external source.
type RatesProvider interface {
	GetDailyRates(ctx context.Context, date time.Time) (*entity.Quote, error)
}

// QuoteRepository persists quotes.
// Interfaces are defined by the consumer, not the adapters.
type QuoteRepository interface {
	UpsertBatch(ctx context.Context, quotes []entity.Quote) error
	// FindRange returns the quotes dated within [start, end], oldest first.
	FindRange(ctx context.Context, start, end time.Time) ([]entity.Quote, error)
	// FindLatest returns the limit most recent quotes, newest first.
	FindLatest(ctx context.Context, limit int) ([]entity.Quote, error)
}

// QuotesUsecase serves live and stored quote series.
type QuotesUsecase struct {
	rates         RatesProvider
	repo          QuoteRepository
	limiter       ratelimiter.Limiter
	maxPeriodDays int
}

// NewQuotesUsecase creates a QuotesUsecase. maxPeriodDays <= 0 uses DefaultMaxPeriodDays.
func NewQuotesUsecase(rates RatesProvider, repo QuoteRepository, limiter ratelimiter.Limiter, maxPeriodDays int) *QuotesUsecase {
	if maxPeriodDays <= 0 {
		maxPeriodDays = DefaultMaxPeriodDays
	}
	return &QuotesUsecase{rates: rates, repo: repo, limiter: limiter, maxPeriodDays: maxPeriodDays}
}

// GetLive fetches every business day of the period from the external source and stores what came back.
// Days the source fails on are skipped; storage failures are only logged.
func (u *QuotesUsecase) GetLive(ctx context.Context, startStr, endStr string) ([]entity.Quote, error) {
	start, end, err := ParsePeriod(startStr, endStr)
	if err != nil {
		return nil, err
	}
	if int(end.Sub(start).Hours()/24) > u.maxPeriodDays {
		return nil, ErrPeriodTooLong
	}

	quotes, err := fetchDays(ctx, u.rates, u.limiter, businessDaysBetween(start, end))
	if err != nil {
		return nil, err
	}
	if err := u.repo.UpsertBatch(ctx, quotes); err != nil {
		slog.Error("failed to store quotes", "start_date", startStr, "end_date", endStr, "error", err)
	}
	return quotes, nil
}

// GetStored reads quotes from storage, oldest first. Without both dates it returns the latest
// LatestStoredLimit quotes.
func (u *QuotesUsecase) GetStored(ctx context.Context, startStr, endStr string) ([]entity.Quote, error) {
	if startStr == "" || endStr == "" {
		qs, err := u.repo.FindLatest(ctx, LatestStoredLimit)
		if err != nil {
			return nil, err
		}
		for i, j := 0, len(qs)-1; i < j; i, j = i+1, j-1 {
			qs[i], qs[j] = qs[j], qs[i]
		}
		return qs, nil
	}

	start, end, err := ParsePeriod(startStr, endStr)
	if err != nil {
		return nil, err
	}
	return u.repo.FindRange(ctx, start, end)
}

// fetchDays asks the provider for each day in order. Only a cancelled context aborts the loop.
func fetchDays(ctx context.Context, rates RatesProvider, limiter ratelimiter.Limiter, days []time.Time) ([]entity.Quote, error) {
	out := make([]entity.Quote, 0, len(days))
	for _, d := range days {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		q, err := rates.GetDailyRates(ctx, d)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Warn("no rates for day", "date", d.Format(DateLayout), "error", err)
			continue
		}
		out = append(out, *q)
	}
	return out, nil
}
