// Package reset computes the instant a completed task reverts to open.
package reset

import (
	"strings"
	"time"

	"pxgdaily/pkg/period"
)

const (
	// DefaultTimezone is the civil timezone the game servers reset in.
	DefaultTimezone = "America/Sao_Paulo"
	// DefaultHour and DefaultMinute are the server reset time-of-day.
	DefaultHour   = 7
	DefaultMinute = 40

	// RollingTitle names the monthly event whose server-side reset is a
	// fixed 30-day cooldown instead of a calendar boundary.
	RollingTitle = "clones"

	rollingDays = 30
)

// Rules carries the fixed reset timezone and time-of-day. The zero value is
// not usable; construct with Default or fill all fields.
type Rules struct {
	Location *time.Location
	Hour     int
	Minute   int
}

// Default returns the production reset rules. It falls back to UTC if the
// timezone database is unavailable.
func Default() Rules {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return Rules{Location: loc, Hour: DefaultHour, Minute: DefaultMinute}
}

// Now returns the current instant in the rules' timezone.
func (r Rules) Now() time.Time {
	return time.Now().In(r.location())
}

// ComputeResetAt returns the absolute instant at which a completion recorded
// at now expires, for a task with the given period and title.
//
// Daily tasks reset tomorrow at the reset time-of-day. Weekly tasks reset at
// the start of next week (Monday), always the next boundary even when the
// current week's reset time has not yet passed. Monthly tasks reset on the
// first day of next month, except the rolling-window event which expires
// exactly 30 days after now, keeping now's time-of-day.
func (r Rules) ComputeResetAt(p period.Period, title string, now time.Time) time.Time {
	loc := r.location()
	now = now.In(loc)
	y, m, d := now.Date()

	switch p {
	case period.Weekly:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		return time.Date(y, m, d-daysSinceMonday+7, r.Hour, r.Minute, 0, 0, loc)
	case period.Monthly:
		if Normalize(title) == RollingTitle {
			hh, mm, ss := now.Clock()
			return time.Date(y, m, d+rollingDays, hh, mm, ss, now.Nanosecond(), loc)
		}
		return time.Date(y, m+1, 1, r.Hour, r.Minute, 0, 0, loc)
	default:
		return time.Date(y, m, d+1, r.Hour, r.Minute, 0, 0, loc)
	}
}

// Normalize canonicalizes a task title for signature comparison.
func Normalize(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func (r Rules) location() *time.Location {
	if r.Location != nil {
		return r.Location
	}
	return time.UTC
}
