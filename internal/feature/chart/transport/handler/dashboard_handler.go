// Package handler serves the dashboard page and its form actions.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cotacao_moedas/internal/feature/chart/domain/entity"
	"cotacao_moedas/internal/feature/chart/transport/http/dto"
	"cotacao_moedas/internal/feature/chart/usecase"
)

// QuoteChart runs one fetch cycle.
type QuoteChart interface {
	FetchAndRender(ctx context.Context, r entity.DateRange) entity.Outcome
}

// ThemeApplier switches the theme.
type ThemeApplier interface {
	ApplyTheme(ctx context.Context, dark bool)
}

// State exposes the dashboard state to the page.
type State interface {
	Snapshot() usecase.Snapshot
	SetDates(r entity.DateRange)
}

// ImageSource returns the mounted chart image.
type ImageSource interface {
	Image() (img []byte, contentType string, version int, ok bool)
}

// DashboardHandler handles the dashboard's page, forms and chart image.
type DashboardHandler struct {
	chart QuoteChart
	theme ThemeApplier
	state State
	image ImageSource
}

func NewDashboardHandler(chart QuoteChart, theme ThemeApplier, state State, image ImageSource) *DashboardHandler {
	return &DashboardHandler{chart: chart, theme: theme, state: state, image: image}
}

// Page renders the dashboard.
//
// GET /
func (h *DashboardHandler) Page(c *gin.Context) {
	snap := h.state.Snapshot()
	data := pageData{
		Dark:      snap.Dark,
		StartDate: snap.Dates.StartDate,
		EndDate:   snap.Dates.EndDate,
		Status:    snap.Status,
	}
	if snap.Dark {
		data.DarkClass = entity.DarkModeClass
	}
	if _, _, version, ok := h.image.Image(); ok {
		data.HasChart = true
		data.ChartVersion = version
	}
	data.Headers, data.Rows = valuesTable(snap.Chart)
	c.HTML(http.StatusOK, PageTemplate, data)
}

// Fetch stores the submitted dates and runs a fetch cycle.
// Empty fields are passed through so the cycle reports them.
//
// POST /fetch
func (h *DashboardHandler) Fetch(c *gin.Context) {
	r := entity.DateRange{
		StartDate: c.PostForm("start_date"),
		EndDate:   c.PostForm("end_date"),
	}
	h.state.SetDates(r)
	h.chart.FetchAndRender(c.Request.Context(), r)
	c.Redirect(http.StatusSeeOther, "/")
}

// Theme applies the checkbox value. An unchecked box is not submitted at all.
//
// POST /theme
func (h *DashboardHandler) Theme(c *gin.Context) {
	dark, _ := strconv.ParseBool(c.PostForm("dark_mode"))
	if c.PostForm("dark_mode") == "on" {
		dark = true
	}
	h.theme.ApplyTheme(c.Request.Context(), dark)
	c.Redirect(http.StatusSeeOther, "/")
}

// Chart serves the mounted chart image.
//
// GET /chart
func (h *DashboardHandler) Chart(c *gin.Context) {
	img, contentType, version, ok := h.image.Image()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no chart rendered yet"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Header("ETag", strconv.Quote(strconv.Itoa(version)))
	c.Data(http.StatusOK, contentType, img)
}

// State returns the dashboard state as JSON.
//
// GET /api/state
func (h *DashboardHandler) State(c *gin.Context) {
	snap := h.state.Snapshot()
	out := dto.StateResponse{
		DarkMode:  snap.Dark,
		StartDate: snap.Dates.StartDate,
		EndDate:   snap.Dates.EndDate,
		Status:    snap.Status,
	}
	if opts := snap.Chart; opts != nil {
		ch := &dto.ChartResponse{
			Title:      opts.Title,
			Subtitle:   opts.Subtitle,
			XAxisTitle: opts.XAxis.Title,
			YAxisTitle: opts.YAxis.Title,
			Categories: opts.XAxis.Categories,
			Series:     make([]dto.SeriesResponse, 0, len(opts.Series)),
		}
		if ch.Categories == nil {
			ch.Categories = []string{}
		}
		for _, s := range opts.Series {
			ch.Series = append(ch.Series, dto.SeriesResponse{Name: s.Name, Data: s.Data})
		}
		out.Chart = ch
	}
	c.JSON(http.StatusOK, out)
}
