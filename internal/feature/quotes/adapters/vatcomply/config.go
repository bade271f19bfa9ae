// Package vatcomply provides a client for the VatComply exchange-rate API.
package vatcomply

import "time"

// DefaultBaseURL is the public VatComply endpoint.
const DefaultBaseURL = "https://api.vatcomply.com"

// Config holds configuration for the VatComply API client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://api.vatcomply.com")
	Timeout time.Duration // HTTP request timeout
}
