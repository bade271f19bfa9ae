package vatcomply

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cotacao_moedas/internal/feature/quotes/adapters/vatcomply/dto"
	"cotacao_moedas/internal/feature/quotes/domain/entity"
	"cotacao_moedas/internal/feature/quotes/usecase"
)

// ErrRatesMissing はレスポンスに rates が含まれていない場合のエラーです。
var ErrRatesMissing = errors.New("vatcomply: rates missing from response")

// VatComplyRates はVatComply外部APIから日次レートを取得するRatesProvider実装です。
type VatComplyRates struct {
	cfg    Config
	client *http.Client
}

// VatComplyRatesがRatesProviderを実装していることをコンパイル時に検証します。
var _ usecase.RatesProvider = (*VatComplyRates)(nil)

// NewVatComplyRates は指定された設定とHTTPクライアントでVatComplyRatesを生成します。
func NewVatComplyRates(cfg Config, client *http.Client) *VatComplyRates {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &VatComplyRates{cfg: cfg, client: client}
}

// GetDailyRates は指定日のUSD基準レートを取得します。
// 対象通貨がレスポンスにない場合、その通貨は欠損として扱います。
func (v *VatComplyRates) GetDailyRates(ctx context.Context, date time.Time) (*entity.Quote, error) {
	dateStr := date.Format(usecase.DateLayout)

	q := url.Values{}
	q.Set("base", entity.BaseCurrency)
	q.Set("date", dateStr)
	u := fmt.Sprintf("%s/rates?%s", strings.TrimRight(v.cfg.BaseURL, "/"), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vatcomply %s: %w", dateStr, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("vatcomply http %d for %s", res.StatusCode, dateStr)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.RatesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode vatcomply %s: %w", dateStr, err)
	}
	if body.Rates == nil {
		return nil, fmt.Errorf("%w (%s)", ErrRatesMissing, dateStr)
	}

	rates := make(map[string]float64, len(entity.TargetCurrencies))
	for _, code := range entity.TargetCurrencies {
		r, ok := body.Rates[code]
		if !ok {
			slog.Debug("currency missing from rates", "currency", code, "date", dateStr)
			continue
		}
		rates[code] = r
	}

	// 日付はリクエストした日を採用する（公表日が前営業日の場合もある）
	return &entity.Quote{
		Date:  time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Rates: rates,
	}, nil
}
