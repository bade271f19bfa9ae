package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"cotacao_moedas/internal/feature/chart/domain/entity"
)

// ErrPreferenceNotFound is returned by a PreferenceStore when the slot was never written.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceStore is a persistent key-value slot store.
// Following Go convention, the interface is defined here by its consumer.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ChartSink is the charting library seen from the dashboard: a global style setter and a chart constructor.
type ChartSink interface {
	// SetTheme replaces the global style applied to charts.
	SetTheme(p entity.Palette)
	// NewChart (re)builds the chart in the container from opts.
	NewChart(opts entity.ChartOptions) (Chart, error)
}

// Chart is one chart instance built by a ChartSink.
type Chart interface {
	// Redraw re-renders the chart with the sink's current style, keeping its data.
	Redraw() error
	Options() entity.ChartOptions
}

var (
	darkPalette = entity.Palette{
		Text:              "#f4f4f4",
		GridLine:          "#555",
		Background:        "#3a3f4a",
		TooltipBackground: "rgba(40, 44, 54, 0.85)",
		TooltipBorder:     "#555",
		LegendHover:       "#ADD8E6",
	}
	lightPalette = entity.Palette{
		Text:              "#333",
		GridLine:          "#e6e6e6",
		Background:        "#fff",
		TooltipBackground: "rgba(255, 255, 255, 0.85)",
		TooltipBorder:     "#ddd",
		LegendHover:       "#ADD8E6",
	}
)

// PaletteFor returns the fixed palette of the dark or light theme.
func PaletteFor(dark bool) entity.Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// ThemeManager owns the dark-mode preference.
type ThemeManager struct {
	// mu keeps the state flag, the stored flag and the sink palette in step.
	mu    sync.Mutex
	store PreferenceStore
	sink  ChartSink
	state *AppState
}

// NewThemeManager creates a ThemeManager writing to store and styling sink.
func NewThemeManager(store PreferenceStore, sink ChartSink, state *AppState) *ThemeManager {
	return &ThemeManager{store: store, sink: sink, state: state}
}

// LoadPersistedPreference reads the stored flag. Absent, unreadable or malformed values mean light.
func (m *ThemeManager) LoadPersistedPreference(ctx context.Context) bool {
	v, err := m.store.Get(ctx, entity.PreferenceKey)
	if err != nil {
		if !errors.Is(err, ErrPreferenceNotFound) {
			slog.Warn("failed to read theme preference", "error", err)
		}
		return false
	}
	switch v {
	case "true":
		return true
	case "false":
		return false
	default:
		slog.Warn("ignoring malformed theme preference", "value", v)
		return false
	}
}

// ApplyTheme sets the document marker, persists the flag and restyles the charts.
// A store failure is logged and otherwise ignored.
func (m *ThemeManager) ApplyTheme(ctx context.Context, dark bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.setDark(dark)
	if err := m.store.Set(ctx, entity.PreferenceKey, strconv.FormatBool(dark)); err != nil {
		slog.Error("failed to persist theme preference", "dark", dark, "error", err)
	}
	slog.Debug("theme applied", "dark", dark)
	m.restyle(dark)
}

// Restyle pushes the palette of the current theme to the sink and redraws the existing chart.
func (m *ThemeManager) Restyle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restyle(m.state.Dark())
}

func (m *ThemeManager) restyle(dark bool) {
	m.sink.SetTheme(PaletteFor(dark))
	if c := m.state.Chart(); c != nil {
		if err := c.Redraw(); err != nil {
			slog.Error("failed to redraw chart with new theme", "error", err)
		}
	}
}
