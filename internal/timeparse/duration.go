package timeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	unitDay  = 24 * time.Hour
	unitWeek = 7 * unitDay
	unitYear = 365 * unitDay
)

// durationUnits maps unit spellings to their length. Months are absent:
// their length depends on the calendar.
var durationUnits = map[string]time.Duration{
	"s": time.Second, "sec": time.Second, "second": time.Second, "seconds": time.Second,
	"m": time.Minute, "min": time.Minute, "minute": time.Minute, "minutes": time.Minute,
	"h": time.Hour, "hr": time.Hour, "hour": time.Hour, "hours": time.Hour,
	"d": unitDay, "day": unitDay, "days": unitDay,
	"w": unitWeek, "week": unitWeek, "weeks": unitWeek,
	"y": unitYear, "year": unitYear, "years": unitYear,

	"秒": time.Second, "分": time.Minute, "分钟": time.Minute,
	"时": time.Hour, "小时": time.Hour, "天": unitDay, "日": unitDay,
	"周": unitWeek, "週": unitWeek, "年": unitYear,
}

// ParseDuration parses a single "<number><unit>" duration such as the
// scan --within window: "10h", "2d", "3weeks", "30天".
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration string")
	}

	i := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	switch i {
	case 0:
		return 0, fmt.Errorf("invalid duration %q: missing number", s)
	case -1:
		return 0, fmt.Errorf("invalid duration %q: missing unit", s)
	}

	num, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	name := strings.ToLower(strings.TrimLeftFunc(s[i:], unicode.IsSpace))
	unit, ok := durationUnits[name]
	if !ok {
		return 0, fmt.Errorf("invalid duration %q: unknown unit %q", s, name)
	}

	if num > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("invalid duration %q: value too large", s)
	}
	return time.Duration(num) * unit, nil
}
