package usecase

import (
	"context"
	"time"

	"cotacao_moedas/internal/feature/chart/domain/entity"
)

// Start runs the page-load sequence: restore the theme, fill the date fields with the
// default range and load the first chart.
func Start(ctx context.Context, theme *ThemeManager, ctrl *QuoteChartController, today time.Time) entity.Outcome {
	theme.ApplyTheme(ctx, theme.LoadPersistedPreference(ctx))

	r := DefaultRange(today)
	ctrl.state.SetDates(r)
	return ctrl.FetchAndRender(ctx, r)
}
