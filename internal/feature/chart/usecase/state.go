package usecase

import (
	"sync"

	"cotacao_moedas/internal/feature/chart/domain/entity"
)

// AppState is the single owner of everything the dashboard shows:
// the theme flag, the date fields, the status text and the current chart instance.
type AppState struct {
	mu     sync.RWMutex
	dark   bool
	dates  entity.DateRange
	status string
	chart  Chart
}

// NewAppState returns an empty light-themed state.
func NewAppState() *AppState {
	return &AppState{}
}

// Snapshot is a consistent copy of the state for rendering.
type Snapshot struct {
	Dark   bool
	Dates  entity.DateRange
	Status string
	// Chart is the option set of the current chart, nil before the first render.
	Chart *entity.ChartOptions
}

// Snapshot copies the current state.
func (s *AppState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Dark: s.dark, Dates: s.dates, Status: s.status}
	if s.chart != nil {
		opts := s.chart.Options()
		snap.Chart = &opts
	}
	return snap
}

// Dark reports whether the dark marker is set on the document root.
func (s *AppState) Dark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// Dates returns the current date fields.
func (s *AppState) Dates() entity.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dates
}

// SetDates replaces the date fields, as a user edit would.
func (s *AppState) SetDates(r entity.DateRange) {
	s.mu.Lock()
	s.dates = r
	s.mu.Unlock()
}

// Status returns the status message.
func (s *AppState) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Chart returns the current chart instance or nil.
func (s *AppState) Chart() Chart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart
}

func (s *AppState) setDark(dark bool) {
	s.mu.Lock()
	s.dark = dark
	s.mu.Unlock()
}

func (s *AppState) setStatus(msg string) {
	s.mu.Lock()
	s.status = msg
	s.mu.Unlock()
}

func (s *AppState) setChart(c Chart) {
	s.mu.Lock()
	s.chart = c
	s.mu.Unlock()
}
