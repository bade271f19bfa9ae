package usecase

import (
	"time"
)

// DateLayout is the wire format of dates.
const DateLayout = "2006-01-02"

// ParsePeriod parses both dates and checks their order.
func ParsePeriod(startStr, endStr string) (start, end time.Time, err error) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, ErrMissingDates
	}
	start, err = time.Parse(DateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	end, err = time.Parse(DateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrStartAfterEnd
	}
	return start, end, nil
}

func isBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// businessDaysBetween lists the weekdays in [start, end], ascending.
func businessDaysBetween(start, end time.Time) []time.Time {
	var out []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// lastBusinessDays returns the n most recent weekdays up to and including today, ascending.
func lastBusinessDays(today time.Time, n int) []time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, 0, n)
	for d := day; len(out) < n; d = d.AddDate(0, 0, -1) {
		if isBusinessDay(d) {
			out = append(out, d)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
