// Package corpus holds the multilingual vocabulary and text patterns that the
// date parsers consult. A Corpus is built once and never mutated, so a single
// instance can be shared by any number of concurrent parses.
package corpus

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Phrase is the outcome of a relative-phrase lookup.
type Phrase struct {
	Matched   bool
	Canonical string // one of the Unit* constants
	Instant   bool   // the phrase means "now" on its own
}

// Corpus is the read-only lookup table set.
type Corpus struct {
	months    map[string]int
	canonical map[string]string
	era       map[string]bool
	meridians map[string]string
	zones     map[string]int
	relative  map[string]string
	// relativeKeys is sorted longest first for prefix matching.
	relativeKeys []string
	units        map[string]bool
}

// Default returns the shared corpus.
var Default = sync.OnceValue(New)

// New builds a corpus from the built-in tables.
func New() *Corpus {
	c := &Corpus{
		months:    make(map[string]int),
		canonical: make(map[string]string),
		era:       make(map[string]bool),
		meridians: make(map[string]string),
		zones:     make(map[string]int),
		relative:  make(map[string]string),
		units:     make(map[string]bool),
	}

	for _, lang := range monthWords {
		for i, words := range lang {
			for _, w := range words {
				c.addMonth(w, i+1)
			}
		}
	}
	for i := 1; i <= 12; i++ {
		for _, w := range numericMonthWords(i) {
			c.addMonth(w, i)
		}
	}
	for i, words := range thaiMonthWords {
		for _, w := range words {
			c.addMonth(w, i+1)
			c.era[w] = true
		}
	}

	for _, lang := range weekdayWords {
		for i, words := range lang {
			for _, w := range words {
				c.canonical[strings.ToLower(w)] = weekdayNames[i]
			}
		}
	}

	for w, m := range meridianWords {
		c.meridians[w] = m
		c.canonical[w] = m
	}

	for _, w := range unitWords {
		c.units[w] = true
		c.canonical[w] = w
	}
	c.canonical["ago"] = "ago"
	c.canonical[":"] = ":"

	for name, offset := range zoneOffsets {
		c.zones[name] = offset
		if len(name) > 1 {
			c.canonical[name] = name
		}
	}

	for unit, words := range relativeWords {
		for _, w := range words {
			c.relative[w] = unit
		}
	}
	for _, w := range instantWords {
		c.relative[w] = UnitNow
	}
	c.relativeKeys = make([]string, 0, len(c.relative))
	for k := range c.relative {
		c.relativeKeys = append(c.relativeKeys, k)
	}
	sort.Slice(c.relativeKeys, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(c.relativeKeys[i]), utf8.RuneCountInString(c.relativeKeys[j])
		if li != lj {
			return li > lj
		}
		return c.relativeKeys[i] < c.relativeKeys[j]
	})

	return c
}

func (c *Corpus) addMonth(word string, month int) {
	w := strings.ToLower(word)
	c.months[w] = month
	c.canonical[w] = monthNames[month]
}

// Month resolves a month name in any supported language to its number.
func (c *Corpus) Month(word string) (int, bool) {
	m, ok := c.months[strings.ToLower(word)]
	return m, ok
}

// MonthDigits resolves a month name to its two-digit form, "07" for "july".
func (c *Corpus) MonthDigits(word string) (string, bool) {
	m, ok := c.Month(word)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d", m), true
}

// Canonical rewrites a recognized word to its English form: months, weekdays,
// meridians, duration units, "ago", timezone abbreviations and ":".
func (c *Corpus) Canonical(word string) (string, bool) {
	v, ok := c.canonical[strings.ToLower(word)]
	return v, ok
}

// IsEra reports whether word belongs to a non-Gregorian calendar's vocabulary.
func (c *Corpus) IsEra(word string) bool {
	return c.era[strings.ToLower(word)]
}

// IsUnit reports whether word is a duration unit such as "days".
func (c *Corpus) IsUnit(word string) bool {
	return c.units[strings.ToLower(word)]
}

// Meridian returns "am" or "pm" for a meridian marker.
func (c *Corpus) Meridian(word string) (string, bool) {
	m, ok := c.meridians[strings.ToLower(word)]
	return m, ok
}

// TimezoneOffset returns the offset in seconds east of UTC for an abbreviation.
func (c *Corpus) TimezoneOffset(name string) (int, bool) {
	o, ok := c.zones[strings.ToLower(strings.TrimSpace(name))]
	return o, ok
}

// Relative matches a chunk against the relative-phrase vocabulary. An exact
// match wins; otherwise the longest phrase the chunk starts with is used,
// provided a Latin phrase ends on a word boundary.
func (c *Corpus) Relative(chunk string) Phrase {
	s := strings.Join(strings.Fields(strings.ToLower(chunk)), " ")
	if s == "" {
		return Phrase{}
	}
	if unit, ok := c.relative[s]; ok {
		return phrase(unit)
	}
	for _, k := range c.relativeKeys {
		if !strings.HasPrefix(s, k) {
			continue
		}
		rest := s[len(k):]
		last, _ := utf8.DecodeLastRuneInString(k)
		if last > unicode.MaxASCII || strings.HasPrefix(rest, " ") {
			return phrase(c.relative[k])
		}
	}
	return Phrase{}
}

func phrase(unit string) Phrase {
	return Phrase{Matched: true, Canonical: unit, Instant: unit == UnitNow}
}

// Apply runs one of the named noise patterns over text. Unknown names leave
// the text untouched.
func (c *Corpus) Apply(pattern, text string) string {
	r, ok := noisePatterns[pattern]
	if !ok {
		return text
	}
	return r.re.ReplaceAllString(text, r.with)
}

// SplitNumeric splits text on digit/non-digit boundaries. The clock
// separator ":" is its own chunk.
func (c *Corpus) SplitNumeric(text string) []string {
	return splitNumericPattern.FindAllString(text, -1)
}

// HasSymbol reports whether text contains anything besides letters and digits.
func (c *Corpus) HasSymbol(text string) bool {
	return symbolPattern.MatchString(text)
}

// Letters strips everything but letters, collapsing the gaps to one space.
func (c *Corpus) Letters(text string) string {
	return letters(text)
}

// OffsetPatterns returns the timezone offset patterns in priority order.
func (c *Corpus) OffsetPatterns() []*regexp.Regexp {
	return offsetPatterns
}

// ZeroZone reports whether text carries a bare UTC/GMT marker.
func (c *Corpus) ZeroZone(text string) bool {
	return zeroZonePattern.MatchString(text)
}

// DubiousDate finds a year-first date that outranks other numbers in text.
func (c *Corpus) DubiousDate(text string) (string, bool) {
	for _, re := range dubiousPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// ExpandExpressions rewrites compact date/time notations into separated
// forms: "2023-07-30T14:12" → "2023-07-30 14:12", "10h42" → "10:42",
// "11时25分18秒" → "11:25:18", "2013年12月8号" → "2013 12月 8".
func (c *Corpus) ExpandExpressions(text string) string {
	text = isoSeparatorPattern.ReplaceAllString(text, "$1 $2")
	text = cjkClockPattern.ReplaceAllStringFunc(text, expandClock)
	text = hourMarkPattern.ReplaceAllString(text, "$1:$2")
	text = yearMarkPattern.ReplaceAllString(text, "$1 ")
	text = monthMarkPattern.ReplaceAllString(text, " $1$2 ")
	text = dayMarkPattern.ReplaceAllString(text, "$1 ")
	return text
}

// ResolveEra rewrites Japanese Reiwa years to Gregorian years and reports
// whether any were found.
func (c *Corpus) ResolveEra(text string) (string, bool) {
	if !reiwaPattern.MatchString(text) {
		return text, false
	}
	return reiwaPattern.ReplaceAllStringFunc(text, expandReiwa), true
}
