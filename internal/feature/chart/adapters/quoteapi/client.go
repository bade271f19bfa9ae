package quoteapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"cotacao_moedas/internal/feature/chart/domain/entity"
	"cotacao_moedas/internal/feature/chart/usecase"
)

// quotesPath is the backend endpoint serving quote series.
const quotesPath = "/api/cotacoes/"

// maxBodyBytes caps how much of an answer is read.
const maxBodyBytes = 1 << 20

// Client fetches quote series from the backend over HTTP.
type Client struct {
	cfg    Config
	client *http.Client
}

// Client must satisfy usecase.QuoteClient.
var _ usecase.QuoteClient = (*Client)(nil)

// NewClient creates a Client for cfg using the given HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchQuotes issues GET /api/cotacoes/?start_date=..&end_date=.. and returns the answer as is.
// Only transport failures are returned as errors; non-2xx answers are left to the caller.
func (c *Client) FetchQuotes(ctx context.Context, startDate, endDate string) (*entity.FetchResult, error) {
	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	u := fmt.Sprintf("%s%s?%s", strings.TrimRight(c.cfg.BaseURL, "/"), quotesPath, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read quotes response: %w", err)
	}

	slog.Debug("quotes fetched", "status", res.StatusCode, "start_date", startDate, "end_date", endDate)
	return &entity.FetchResult{StatusCode: res.StatusCode, Body: body}, nil
}
