package usecase

import (
	"context"
	"errors"
	"sync"

	"cotacao_moedas/internal/feature/chart/domain/entity"
)

// mockStore is an in-memory PreferenceStore.
type mockStore struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
	setErr error
	sets   int
}

func newMockStore() *mockStore {
	return &mockStore{values: map[string]string{}}
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return "", ErrPreferenceNotFound
	}
	return v, nil
}

func (m *mockStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

// mockChart records redraws.
type mockChart struct {
	opts    entity.ChartOptions
	redraws int
	palette entity.Palette
	sink    *mockSink
}

func (c *mockChart) Redraw() error {
	c.redraws++
	c.palette = c.sink.palette
	return c.sink.redrawErr
}

func (c *mockChart) Options() entity.ChartOptions { return c.opts }

// mockSink records palettes and built charts.
type mockSink struct {
	palette   entity.Palette
	themes    []entity.Palette
	charts    []*mockChart
	newErr    error
	redrawErr error
	// failPopulated makes NewChart fail only for charts with series.
	failPopulated bool
}

func (s *mockSink) SetTheme(p entity.Palette) {
	s.palette = p
	s.themes = append(s.themes, p)
}

func (s *mockSink) NewChart(opts entity.ChartOptions) (Chart, error) {
	if s.newErr != nil {
		return nil, s.newErr
	}
	if s.failPopulated && !opts.Empty() {
		return nil, errors.New("render failed")
	}
	c := &mockChart{opts: opts, palette: s.palette, sink: s}
	s.charts = append(s.charts, c)
	return c, nil
}

func (s *mockSink) last() *mockChart {
	if len(s.charts) == 0 {
		return nil
	}
	return s.charts[len(s.charts)-1]
}

// mockClient answers FetchQuotes with a fixed result.
type mockClient struct {
	result *entity.FetchResult
	err    error
	calls  int
	start  string
	end    string
}

func (m *mockClient) FetchQuotes(ctx context.Context, startDate, endDate string) (*entity.FetchResult, error) {
	m.calls++
	m.start, m.end = startDate, endDate
	return m.result, m.err
}
