package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotacao_moedas/internal/feature/chart/domain/entity"
	"cotacao_moedas/internal/feature/chart/usecase"
)

func ptr(v float64) *float64 { return &v }

func populated() entity.ChartOptions {
	return usecase.PopulatedChartOptions(
		[]string{"2024-01-08", "2024-01-09"},
		[]entity.Series{
			{Name: "BRL", Data: []*float64{ptr(4.9), ptr(4.95)}},
			{Name: "EUR", Data: []*float64{ptr(0.91), nil}},
			{Name: "JPY", Data: []*float64{nil, nil}},
		},
	)
}

var pngMagic = []byte("\x89PNG")

func TestSink_NewChart_Populated(t *testing.T) {
	t.Parallel()
	c := NewContainer()
	s := NewSink(c, Config{})

	ch, err := s.NewChart(populated())
	require.NoError(t, err)
	assert.Equal(t, "line", string(ch.Options().Type))

	img, ct, version, ok := c.Image()
	require.True(t, ok)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, 1, version)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestSink_NewChart_Empty(t *testing.T) {
	t.Parallel()
	c := NewContainer()
	s := NewSink(c, Config{})

	_, err := s.NewChart(usecase.EmptyChartOptions())
	require.NoError(t, err)

	img, _, _, ok := c.Image()
	require.True(t, ok)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestSink_NewChart_SparseSeries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		dates  []string
		series []entity.Series
	}{
		{
			name:  "one category",
			dates: []string{"2024-01-02"},
			series: []entity.Series{
				{Name: "BRL", Data: []*float64{ptr(4.9)}},
				{Name: "EUR", Data: []*float64{ptr(0.91)}},
				{Name: "JPY", Data: []*float64{ptr(141.2)}},
			},
		},
		{
			name:  "one category with zero value",
			dates: []string{"2024-01-02"},
			series: []entity.Series{
				{Name: "BRL", Data: []*float64{ptr(0)}},
			},
		},
		{
			name:  "one point per series",
			dates: []string{"2024-01-08", "2024-01-09", "2024-01-10"},
			series: []entity.Series{
				{Name: "BRL", Data: []*float64{ptr(4.9), nil, nil}},
				{Name: "EUR", Data: []*float64{nil, ptr(0.91), nil}},
				{Name: "JPY", Data: []*float64{nil, nil, ptr(141.2)}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewContainer()
			s := NewSink(c, Config{Format: FormatSVG})

			_, err := s.NewChart(usecase.PopulatedChartOptions(tt.dates, tt.series))
			require.NoError(t, err)

			img, _, _, ok := c.Image()
			require.True(t, ok)
			for _, d := range tt.dates {
				assert.Contains(t, string(img), d)
			}
		})
	}
}

func TestBuild_TicksSpanPaddedRange(t *testing.T) {
	t.Parallel()
	opts := usecase.PopulatedChartOptions(
		[]string{"2024-01-02"},
		[]entity.Series{{Name: "BRL", Data: []*float64{ptr(4.9)}}},
	)

	ch := build(opts, palette{}, 800, 400)

	ticks := ch.XAxis.Ticks
	require.Len(t, ticks, 3)
	assert.Equal(t, 0.5, ticks[0].Value)
	assert.Equal(t, "2024-01-02", ticks[1].Label)
	assert.Equal(t, 1.5, ticks[2].Value)
	assert.Empty(t, ticks[0].Label)
	assert.Empty(t, ticks[2].Label)
}

func TestSink_SVG(t *testing.T) {
	t.Parallel()
	c := NewContainer()
	s := NewSink(c, Config{Format: FormatSVG, Width: 640, Height: 320})

	_, err := s.NewChart(populated())
	require.NoError(t, err)

	img, ct, _, ok := c.Image()
	require.True(t, ok)
	assert.Equal(t, "image/svg+xml", ct)
	assert.Contains(t, string(img), "<svg")
	assert.Contains(t, string(img), "2024-01-08")
}

func TestSink_RedrawUsesNewTheme(t *testing.T) {
	t.Parallel()
	c := NewContainer()
	s := NewSink(c, Config{Format: FormatSVG})

	ch, err := s.NewChart(populated())
	require.NoError(t, err)
	light, _, _, _ := c.Image()

	s.SetTheme(usecase.PaletteFor(true))
	require.NoError(t, ch.Redraw())
	dark, _, version, _ := c.Image()

	assert.Equal(t, 2, version)
	assert.NotEqual(t, light, dark)
}

func TestSink_ReplacedChartDoesNotRedraw(t *testing.T) {
	t.Parallel()
	c := NewContainer()
	s := NewSink(c, Config{})

	old, err := s.NewChart(populated())
	require.NoError(t, err)
	_, err = s.NewChart(usecase.EmptyChartOptions())
	require.NoError(t, err)

	require.NoError(t, old.Redraw())
	_, _, version, _ := c.Image()
	assert.Equal(t, 2, version)
}

func TestSink_BadPalette(t *testing.T) {
	t.Parallel()
	c := NewContainer()
	s := NewSink(c, Config{})
	s.SetTheme(entity.Palette{Text: "blue"})

	_, err := s.NewChart(populated())
	require.Error(t, err)
	_, _, _, ok := c.Image()
	assert.False(t, ok)
}

func TestContainer_ImageBeforeMount(t *testing.T) {
	t.Parallel()
	_, _, _, ok := NewContainer().Image()
	assert.False(t, ok)
}
