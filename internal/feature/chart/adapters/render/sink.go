// Package render implements the dashboard's chart sink on top of go-chart.
// Charts are drawn to an image held by a Container, which the dashboard serves.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"cotacao_moedas/internal/feature/chart/domain/entity"
	"cotacao_moedas/internal/feature/chart/usecase"
)

// Format is the image encoding of rendered charts.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Config controls the rendered image.
type Config struct {
	Format Format
	Width  int
	Height int
}

// seriesColors follow the order of entity.Currencies.
var seriesColors = []string{"#2caffe", "#544fc5", "#00e272", "#fe6a35"}

// Sink renders charts into a Container.
type Sink struct {
	mu        sync.Mutex
	cfg       Config
	palette   entity.Palette
	container *Container
	current   *lineChart
}

// Sink must satisfy usecase.ChartSink.
var _ usecase.ChartSink = (*Sink)(nil)

// NewSink creates a Sink drawing into container. Zero sizes default to 800x400, empty format to PNG.
func NewSink(container *Container, cfg Config) *Sink {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 400
	}
	if cfg.Format == "" {
		cfg.Format = FormatPNG
	}
	return &Sink{cfg: cfg, palette: usecase.PaletteFor(false), container: container}
}

// SetTheme replaces the global palette used by every subsequent draw.
func (s *Sink) SetTheme(p entity.Palette) {
	s.mu.Lock()
	s.palette = p
	s.mu.Unlock()
}

// NewChart draws opts into the container, replacing whatever chart was mounted.
func (s *Sink) NewChart(opts entity.ChartOptions) (usecase.Chart, error) {
	c := &lineChart{sink: s, opts: opts}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.drawLocked(c); err != nil {
		return nil, err
	}
	s.current = c
	return c, nil
}

func (s *Sink) drawLocked(c *lineChart) error {
	p, err := resolve(s.palette)
	if err != nil {
		return err
	}
	ch := build(c.opts, p, s.cfg.Width, s.cfg.Height)

	var buf bytes.Buffer
	contentType := "image/png"
	rp := chart.PNG
	if s.cfg.Format == FormatSVG {
		contentType = "image/svg+xml"
		rp = chart.SVG
	}
	if err := ch.Render(rp, &buf); err != nil {
		return fmt.Errorf("render %q: %w", c.opts.Title, err)
	}
	s.container.mount(buf.Bytes(), contentType)
	return nil
}

// lineChart is one chart instance. Only the most recently created one is mounted.
type lineChart struct {
	sink *Sink
	opts entity.ChartOptions
}

// Redraw re-renders the chart with the sink's current palette. A chart that was replaced is left alone.
func (c *lineChart) Redraw() error {
	s := c.sink
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != c {
		return nil
	}
	return s.drawLocked(c)
}

func (c *lineChart) Options() entity.ChartOptions {
	return c.opts
}

func resolve(p entity.Palette) (palette, error) {
	var out palette
	var errs []error
	for _, f := range []struct {
		dst *drawing.Color
		css string
	}{
		{&out.text, p.Text},
		{&out.grid, p.GridLine},
		{&out.background, p.Background},
		{&out.legendFill, p.TooltipBackground},
		{&out.legendStroke, p.TooltipBorder},
	} {
		c, err := parseColor(f.css)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*f.dst = c
	}
	return out, errors.Join(errs...)
}

// build translates the declarative options into a go-chart chart.
// Categories are placed at x = 1..n; absent points are skipped.
func build(opts entity.ChartOptions, p palette, width, height int) chart.Chart {
	n := len(opts.XAxis.Categories)
	xmax := float64(n) + 0.5
	if n == 0 {
		xmax = 1
	}

	// go-chart takes the x range from the ticks, so unlabeled edge ticks keep
	// it at [0.5, xmax] even for a single category.
	ticks := make([]chart.Tick, 0, n+2)
	ticks = append(ticks, chart.Tick{Value: 0.5})
	for i, cat := range opts.XAxis.Categories {
		ticks = append(ticks, chart.Tick{Value: float64(i + 1), Label: cat})
	}
	ticks = append(ticks, chart.Tick{Value: xmax})

	var series []chart.Series
	var annotations []chart.Value2
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i, s := range opts.Series {
		var xs, ys []float64
		for j, v := range s.Data {
			if v == nil {
				continue
			}
			xs = append(xs, float64(j+1))
			ys = append(ys, *v)
			ymin = math.Min(ymin, *v)
			ymax = math.Max(ymax, *v)
			if opts.DataLabels {
				annotations = append(annotations, chart.Value2{
					XValue: float64(j + 1),
					YValue: *v,
					Label:  fmt.Sprintf("%.*f", opts.Tooltip.ValueDecimals, *v),
				})
			}
		}
		if len(xs) == 0 {
			continue
		}
		col, _ := parseColor(seriesColors[i%len(seriesColors)])
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    3,
			},
		})
	}
	if len(annotations) > 0 {
		series = append(series, chart.AnnotationSeries{
			Style:       chart.Style{FontColor: p.text, FillColor: p.legendFill, StrokeColor: p.legendStroke},
			Annotations: annotations,
		})
	}

	hasData := !math.IsInf(ymin, 1)
	if !hasData {
		// go-chart refuses to render without series
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{0, 1},
			YValues: []float64{0, 0},
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent, DotColor: drawing.ColorTransparent},
		})
		ymin, ymax = 0, 1
	} else {
		pad := (ymax - ymin) * 0.05
		if pad == 0 {
			pad = math.Max(math.Abs(ymax)*0.05, 1)
		}
		ymin, ymax = ymin-pad, ymax+pad
	}

	axisStyle := chart.Style{FontColor: p.text, StrokeColor: p.grid, Hidden: !hasData}
	gridStyle := chart.Style{StrokeColor: p.grid, StrokeWidth: 1, Hidden: !hasData}

	ch := chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.Style{FontColor: p.text},
		Width:      width,
		Height:     height,
		Background: chart.Style{
			FillColor: p.background,
			Padding:   chart.Box{Top: 56, Left: 16, Right: 24, Bottom: 16},
		},
		Canvas: chart.Style{FillColor: p.background},
		XAxis: chart.XAxis{
			Name:           opts.XAxis.Title,
			NameStyle:      chart.Style{FontColor: p.text},
			Style:          axisStyle,
			Ticks:          ticks,
			Range:          &chart.ContinuousRange{Min: 0.5, Max: xmax},
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           opts.YAxis.Title,
			NameStyle:      chart.Style{FontColor: p.text},
			Style:          axisStyle,
			Range:          &chart.ContinuousRange{Min: ymin, Max: ymax},
			GridMajorStyle: gridStyle,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		Series: series,
	}
	if hasData {
		ch.Elements = []chart.Renderable{
			chart.Legend(&ch, chart.Style{FontColor: p.text, FillColor: p.legendFill, StrokeColor: p.legendStroke}),
		}
	}
	if opts.Subtitle != "" {
		ch.Elements = append(ch.Elements, subtitle(opts.Subtitle, p.text))
	}
	return ch
}

// subtitle draws text centered just below the title.
func subtitle(text string, color drawing.Color) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		r.SetFont(defaults.GetFont())
		r.SetFontColor(color)
		r.SetFontSize(9)
		tb := r.MeasureText(text)
		x := canvas.Left + (canvas.Width()-tb.Width())/2
		r.Text(text, x, canvas.Top-8)
	}
}
