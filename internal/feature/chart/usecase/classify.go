package usecase

import (
	"encoding/json"
	"fmt"

	"cotacao_moedas/internal/feature/chart/domain/entity"
)

// BackendError is a failure reported by the quote backend through a non-2xx answer.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	return e.Message
}

// quotesPayload mirrors the success body of GET /api/cotacoes/.
type quotesPayload struct {
	Dates   []string   `json:"dates"`
	BRL     []*float64 `json:"BRL"`
	EUR     []*float64 `json:"EUR"`
	JPY     []*float64 `json:"JPY"`
	Message string     `json:"message"`
}

func (p quotesPayload) values(code string) []*float64 {
	switch code {
	case "BRL":
		return p.BRL
	case "EUR":
		return p.EUR
	case "JPY":
		return p.JPY
	}
	return nil
}

// errorPayload mirrors the error body of the backend.
type errorPayload struct {
	Error string `json:"error"`
}

// Classify turns a backend answer into an Outcome. It has no side effects.
func Classify(statusCode int, body []byte) entity.Outcome {
	if statusCode < 200 || statusCode > 299 {
		var ep errorPayload
		if err := json.Unmarshal(body, &ep); err != nil {
			return Failed(fmt.Errorf("decode error response (status %d): %w", statusCode, err))
		}
		msg := ep.Error
		if msg == "" {
			msg = MsgUnknownAPIError
		}
		return Failed(&BackendError{StatusCode: statusCode, Message: msg})
	}

	var p quotesPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return Failed(fmt.Errorf("decode quotes: %w", err))
	}
	if p.Message != "" {
		return entity.Outcome{Kind: entity.OutcomeNoData, Message: p.Message}
	}
	if len(p.Dates) == 0 {
		return entity.Outcome{Kind: entity.OutcomeNoData, Message: MsgNoData}
	}

	series := make([]entity.Series, 0, len(entity.Currencies))
	for _, code := range entity.Currencies {
		series = append(series, entity.Series{Name: code, Data: align(p.values(code), len(p.Dates))})
	}
	return entity.Outcome{Kind: entity.OutcomePopulated, Dates: p.Dates, Series: series}
}

// Failed builds the failure outcome for err.
func Failed(err error) entity.Outcome {
	return entity.Outcome{Kind: entity.OutcomeFailed, Message: MsgLoadFailedPrefix + err.Error(), Err: err}
}

// align copies values into a slice of exactly n points; missing points stay absent.
func align(values []*float64, n int) []*float64 {
	out := make([]*float64, n)
	for i := 0; i < n && i < len(values); i++ {
		if values[i] != nil {
			v := *values[i]
			out[i] = &v
		}
	}
	return out
}
