// Package entity defines the domain models for the chart feature.
package entity

// DateRange is the pair of date fields edited on the dashboard.
// Both bounds are kept as their YYYY-MM-DD text so that an empty field can be represented.
type DateRange struct {
	StartDate string // e.g. "2024-01-02"
	EndDate   string // e.g. "2024-01-08"
}

// Complete reports whether both bounds were supplied.
func (r DateRange) Complete() bool {
	return r.StartDate != "" && r.EndDate != ""
}
