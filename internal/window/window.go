// ABOUTME: Local-day window computation for timezone-aware daily queries.
// ABOUTME: Maps a UTC instant plus an IANA zone to UTC day bounds.
package window

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimezone is returned for unrecognized IANA zone names.
var ErrInvalidTimezone = errors.New("invalid timezone")

// Window is a half-open UTC interval [Start, End) covering one
// wall-clock day in some timezone. On DST transition days the UTC
// duration may be 23 or 25 hours.
type Window struct {
	Start time.Time
	End   time.Time
}

// Day computes the window for the wall-clock day containing now in the
// given IANA timezone. Pure and deterministic: same inputs, same window.
func Day(now time.Time, tz string) (Window, error) {
	// LoadLocation("") silently means UTC; treat it as a caller bug instead.
	if tz == "" {
		return Window{}, fmt.Errorf("%w: empty zone name", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	local := now.In(loc)
	startLocal := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	// 24 local hours later, which may be 23 or 25 UTC hours across DST shifts.
	endLocal := startLocal.AddDate(0, 0, 1)

	return Window{Start: startLocal.UTC(), End: endLocal.UTC()}, nil
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration returns the UTC length of the window.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
