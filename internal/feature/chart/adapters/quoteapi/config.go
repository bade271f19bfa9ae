// Package quoteapi is the dashboard's client for the quotes backend.
package quoteapi

import "time"

// Config holds the location of the quotes backend.
type Config struct {
	BaseURL string        // e.g. "http://localhost:8080"
	Timeout time.Duration // whole-request timeout
}
