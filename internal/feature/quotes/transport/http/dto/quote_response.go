package dto

// QuoteSeriesResponse is the series payload consumed by the dashboard.
// Each currency slice is aligned with Dates; null marks a missing rate.
type QuoteSeriesResponse struct {
	Dates []string   `json:"dates"`
	BRL   []*float64 `json:"BRL"`
	EUR   []*float64 `json:"EUR"`
	JPY   []*float64 `json:"JPY"`
}

// MessageResponse is an informational answer without data.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
