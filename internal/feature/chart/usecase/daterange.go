// Package usecase implements the dashboard logic: theme handling, default date range and the
// fetch-and-render cycle of the quote chart.
package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"cotacao_moedas/internal/feature/chart/domain/entity"
)

const (
	// DateLayout is the wire and display format of a calendar date.
	DateLayout = "2006-01-02"

	// businessDaysWanted is the size of the default range.
	businessDaysWanted = 5
	// maxDaysToLookBack bounds the backward walk.
	maxDaysToLookBack = 10
)

// FormatDate returns t as zero-padded YYYY-MM-DD in t's own location.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a YYYY-MM-DD string as a calendar date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

// IsBusinessDay reports whether t falls on Monday through Friday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// BusinessDays walks backward from today and returns the most recent business days in ascending order.
// The walk stops once want days are found or maxLookBack calendar days were examined.
func BusinessDays(today time.Time, want, maxLookBack int) []time.Time {
	found := make([]time.Time, 0, want)
	day := dateOnly(today)
	for offset := 0; len(found) < want && offset < maxLookBack; offset++ {
		if IsBusinessDay(day) {
			found = append(found, day)
		}
		day = day.AddDate(0, 0, -1)
	}
	// reverse into ascending order
	for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
		found[i], found[j] = found[j], found[i]
	}
	return found
}

// DefaultRange covers the last five business days up to and including today.
// When today is a weekend day the range ends on the previous Friday.
func DefaultRange(today time.Time) entity.DateRange {
	return rangeFor(today, businessDaysWanted, maxDaysToLookBack)
}

func rangeFor(today time.Time, want, maxLookBack int) entity.DateRange {
	days := BusinessDays(today, want, maxLookBack)
	if len(days) < want {
		// unreachable with a seven-day week and the default bounds
		slog.Warn("could not find enough business days, using calendar days", "found", len(days), "want", want)
		start := dateOnly(today).AddDate(0, 0, -(want - 1))
		return entity.DateRange{StartDate: FormatDate(start), EndDate: FormatDate(today)}
	}
	r := entity.DateRange{
		StartDate: FormatDate(days[0]),
		EndDate:   FormatDate(days[len(days)-1]),
	}
	slog.Debug("default date range computed", "start", r.StartDate, "end", r.EndDate)
	return r
}

// dateOnly truncates t to midnight of its calendar day, keeping the location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
