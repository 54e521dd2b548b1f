package timeparse

import (
	"fmt"
	"time"
)

// ParseNow parses a pinned "current time" for the --now flag.
// Supported formats:
//   - YYYY-MM-DD (midnight in loc)
//   - YYYY-MM-DD HH:MM:SS (in loc)
//   - RFC3339: 2018-10-27T10:00:00Z (zone as written)
//
// A nil loc means UTC.
func ParseNow(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation(time.DateTime, s, loc); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time format %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, or RFC3339)", s)
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
