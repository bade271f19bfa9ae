// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// BaseCurrency is the currency every rate is quoted against.
const BaseCurrency = "USD"

// TargetCurrencies are the currencies tracked for BaseCurrency, in response order.
var TargetCurrencies = []string{"BRL", "EUR", "JPY"}

// Quote holds the USD rates of one business day.
type Quote struct {
	Date time.Time // calendar day, midnight UTC
	// Rates maps a target currency code to its value. Missing codes were not published that day.
	Rates      map[string]float64
	RecordedAt time.Time
}

// Rate returns the value for code, or nil when absent.
func (q Quote) Rate(code string) *float64 {
	v, ok := q.Rates[code]
	if !ok {
		return nil
	}
	return &v
}
