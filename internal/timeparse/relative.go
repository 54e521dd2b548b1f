package timeparse

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jparise/datesift/internal/corpus"
)

const (
	// Inputs that split into this many chunks are too noisy to trust.
	maxRelativeChunks = 5
	// In strict mode, longer chunks are not considered as phrases.
	maxStrictPhraseLen = 12
	maxRelativeNumber  = 3600 * 3600
)

// Per-unit ceilings on the number of units ago.
var relativeCeilings = map[string]int{
	corpus.UnitSecond: 3600,
	corpus.UnitMinute: 60,
	corpus.UnitHour:   24,
	corpus.UnitDay:    31,
	corpus.UnitWeek:   7,
	corpus.UnitMonth:  12,
}

type relativeStrategy struct {
	p *Parser
}

func (s *relativeStrategy) Method() Method { return MethodRelative }

// Parse resolves "<number> <unit> ago" phrases against the current time.
// The result is always local time.
func (s *relativeStrategy) Parse(text string, param Param) Result {
	fail := Result{Method: MethodRelative}

	text = strings.ToLower(s.p.eliminateNoise(fold(text)))
	chunks := s.p.vocab.SplitNumeric(text)
	if len(chunks) == 0 || len(chunks) >= maxRelativeChunks {
		return fail
	}

	numbers := make(map[int]int)
	for i, c := range chunks {
		if !isDigits(c) {
			continue
		}
		n, err := strconv.Atoi(c)
		if err != nil || n < 1 || n > maxRelativeNumber {
			continue
		}
		numbers[i] = n
	}

	now := s.p.today()
	for i, c := range chunks {
		if blankChunk(c) {
			continue
		}
		if param.Strict && utf8.RuneCountInString(c) > maxStrictPhraseLen {
			continue
		}
		phrase := s.p.vocab.Relative(c)
		if !phrase.Matched {
			continue
		}
		if phrase.Instant && len(numbers) == 0 {
			return s.p.resultAt(MethodRelative, now, zone{})
		}
		for j := i - 1; j >= 0; j-- {
			n, ok := numbers[j]
			if !ok {
				continue
			}
			if t, ok := subtractUnits(now, phrase.Canonical, n); ok {
				s.p.logger.Debug("relative phrase", "unit", phrase.Canonical, "n", n)
				return s.p.resultAt(MethodRelative, t, zone{})
			}
		}
	}
	return fail
}

func blankChunk(c string) bool {
	return strings.TrimSpace(c) == "" || c == ":"
}

// subtractUnits moves now back by n units. Seconds, minutes and hours are
// elapsed time. Days and longer step the local calendar, and months and years
// clamp the day to the length of the target month.
func subtractUnits(now time.Time, unit string, n int) (time.Time, bool) {
	if ceiling, ok := relativeCeilings[unit]; ok && n > ceiling {
		return time.Time{}, false
	}
	switch unit {
	case corpus.UnitSecond:
		return now.Add(-time.Duration(n) * time.Second), true
	case corpus.UnitMinute:
		return now.Add(-time.Duration(n) * time.Minute), true
	case corpus.UnitHour:
		return now.Add(-time.Duration(n) * time.Hour), true
	case corpus.UnitDay:
		return now.AddDate(0, 0, -n), true
	case corpus.UnitWeek:
		return now.AddDate(0, 0, -7*n), true
	case corpus.UnitMonth:
		return addMonths(now, -n), true
	case corpus.UnitYear:
		if n >= now.Year() {
			return time.Time{}, false
		}
		return addMonths(now, -12*n), true
	}
	return time.Time{}, false
}

func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, months, 0)
	day := min(t.Day(), daysIn(target.Year(), target.Month()))
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
