// Package period defines task recurrence classes and their cycle keys.
package period

import (
	"fmt"
	"strings"
	"time"
)

// Period identifies how often a task recurs.
type Period string

const (
	// Daily tasks reset every day.
	Daily Period = "daily"
	// Weekly tasks reset every ISO week.
	Weekly Period = "weekly"
	// Monthly tasks reset every calendar month.
	Monthly Period = "monthly"
)

// All returns the supported periods in display order.
func All() []Period {
	return []Period{Daily, Weekly, Monthly}
}

// Parse converts a string to a Period or returns an error for unknown values.
func Parse(raw string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range All() {
		if candidate == p {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("period: unknown period %q", raw)
}

// Valid reports whether p is one of the supported periods.
func (p Period) Valid() bool {
	switch p {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

// Key returns the canonical cycle identifier the instant t belongs to.
// Daily keys look like "2024-03-05", monthly keys like "2024-03", and
// weekly keys use the ISO-8601 form "2024-W10".
func (p Period) Key(t time.Time) string {
	switch p {
	case Weekly:
		return weeklyKey(t)
	case Monthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// weeklyKey computes the ISO-8601 week identifier by shifting the date to
// the Thursday of its ISO week (Monday=1 … Sunday=7). The ISO year is that
// Thursday's calendar year, and the week number counts from that year's
// January 1. Dates near year boundaries can land in the adjacent ISO year:
// 2023-01-01 (a Sunday) belongs to 2022-W52.
func weeklyKey(t time.Time) string {
	y, m, d := t.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	dayNum := int(date.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	thursday := date.AddDate(0, 0, 4-dayNum)

	yearStart := time.Date(thursday.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	days := int(thursday.Sub(yearStart) / (24 * time.Hour))
	week := (days + 1 + 6) / 7

	return fmt.Sprintf("%d-W%02d", thursday.Year(), week)
}
