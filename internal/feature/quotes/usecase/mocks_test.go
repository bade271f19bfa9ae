package usecase

import (
	"context"
	"sync"
	"time"

	"cotacao_moedas/internal/feature/quotes/domain/entity"
)

type mockRates struct {
	mu    sync.Mutex
	fn    func(date time.Time) (*entity.Quote, error)
	calls []string
}

func (m *mockRates) GetDailyRates(_ context.Context, date time.Time) (*entity.Quote, error) {
	m.mu.Lock()
	m.calls = append(m.calls, date.Format(DateLayout))
	m.mu.Unlock()
	return m.fn(date)
}

type mockRepo struct {
	upserted  []entity.Quote
	upsertErr error
	rangeFn   func(start, end time.Time) ([]entity.Quote, error)
	latestFn  func(limit int) ([]entity.Quote, error)
}

func (m *mockRepo) UpsertBatch(_ context.Context, qs []entity.Quote) error {
	m.upserted = append(m.upserted, qs...)
	return m.upsertErr
}

func (m *mockRepo) FindRange(_ context.Context, start, end time.Time) ([]entity.Quote, error) {
	return m.rangeFn(start, end)
}

func (m *mockRepo) FindLatest(_ context.Context, limit int) ([]entity.Quote, error) {
	return m.latestFn(limit)
}

type noLimit struct{}

func (noLimit) Wait(ctx context.Context) error { return ctx.Err() }

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func quoteOn(date time.Time) *entity.Quote {
	return &entity.Quote{Date: date, Rates: map[string]float64{"BRL": 4.9, "EUR": 0.91, "JPY": 144.1}}
}
