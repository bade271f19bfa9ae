package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"cotacao_moedas/internal/feature/chart/domain/entity"
)

// QuoteClient fetches the raw quote answer for a date range.
// A returned error means no answer was received at all.
type QuoteClient interface {
	FetchQuotes(ctx context.Context, startDate, endDate string) (*entity.FetchResult, error)
}

// QuoteChartController runs the fetch-and-render cycle of the dashboard.
type QuoteChartController struct {
	client QuoteClient
	sink   ChartSink
	theme  *ThemeManager
	state  *AppState
}

// NewQuoteChartController creates a controller sharing state with the theme manager.
func NewQuoteChartController(client QuoteClient, sink ChartSink, theme *ThemeManager, state *AppState) *QuoteChartController {
	return &QuoteChartController{client: client, sink: sink, theme: theme, state: state}
}

// FetchAndRender loads the quotes of r and leaves the dashboard in one of its terminal states.
// Overlapping calls are not coordinated: the last one to finish wins.
func (c *QuoteChartController) FetchAndRender(ctx context.Context, r entity.DateRange) entity.Outcome {
	c.state.setStatus("")

	if !r.Complete() {
		c.state.setStatus(MsgSelectDates)
		return entity.Outcome{Kind: entity.OutcomeRejected, Message: MsgSelectDates}
	}

	var out entity.Outcome
	res, err := c.client.FetchQuotes(ctx, r.StartDate, r.EndDate)
	if err != nil {
		out = Failed(err)
	} else {
		out = Classify(res.StatusCode, res.Body)
	}

	switch out.Kind {
	case entity.OutcomePopulated:
		if err := c.RenderPopulatedChart(out.Dates, out.Series); err != nil {
			out = Failed(fmt.Errorf("render chart: %w", err))
			c.fail(out, r)
		}
	case entity.OutcomeNoData:
		c.state.setStatus(out.Message)
		c.RenderEmptyChart()
	default:
		c.fail(out, r)
	}
	return out
}

func (c *QuoteChartController) fail(out entity.Outcome, r entity.DateRange) {
	slog.Error("failed to load quotes", "start_date", r.StartDate, "end_date", r.EndDate, "error", out.Err)
	c.state.setStatus(out.Message)
	c.RenderEmptyChart()
}

// PopulatedChartOptions describes the quote line chart.
func PopulatedChartOptions(dates []string, series []entity.Series) entity.ChartOptions {
	return entity.ChartOptions{
		Type:     entity.ChartTypeLine,
		Title:    ChartTitle,
		Subtitle: ChartSubtitle,
		XAxis:    entity.Axis{Title: ChartXAxisTitle, Categories: dates},
		YAxis:    entity.Axis{Title: ChartYAxisTitle},
		Tooltip: entity.Tooltip{
			ValueDecimals: tooltipDecimals,
			PointFormat:   tooltipPointFormat,
		},
		DataLabels:    false,
		MouseTracking: true,
		Series:        series,
		Credits:       false,
	}
}

// EmptyChartOptions describes the placeholder chart shown when there is nothing to plot.
func EmptyChartOptions() entity.ChartOptions {
	return entity.ChartOptions{
		Title:   EmptyChartTitle,
		XAxis:   entity.Axis{Categories: []string{}},
		YAxis:   entity.Axis{Title: ""},
		Series:  []entity.Series{},
		Credits: false,
	}
}

// RenderPopulatedChart builds the quote chart and re-applies the current theme to it.
func (c *QuoteChartController) RenderPopulatedChart(dates []string, series []entity.Series) error {
	return c.render(PopulatedChartOptions(dates, series))
}

// RenderEmptyChart builds the placeholder chart. Failures are only logged.
func (c *QuoteChartController) RenderEmptyChart() {
	if err := c.render(EmptyChartOptions()); err != nil {
		slog.Error("failed to render empty chart", "error", err)
	}
}

func (c *QuoteChartController) render(opts entity.ChartOptions) error {
	ch, err := c.sink.NewChart(opts)
	if err != nil {
		return err
	}
	c.state.setChart(ch)
	// a new instance starts without the theme overrides
	c.theme.Restyle()
	return nil
}
