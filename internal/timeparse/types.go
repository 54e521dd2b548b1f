package timeparse

import (
	"regexp"
	"time"

	"github.com/jparise/datesift/internal/corpus"
)

// Param configures a single parse call.
type Param struct {
	// Timezone is empty (local), "utc", or a known abbreviation such as
	// "cst". Unknown abbreviations are treated as empty.
	Timezone string `json:"timezone,omitempty"`
	// Strict rejects dates that lie in the future or look implausible.
	Strict bool `json:"strict,omitempty"`
}

// Method names the strategy that produced a Result.
type Method string

const (
	MethodAuto      Method = "auto"
	MethodTimestamp Method = "timestamp"
	MethodRelative  Method = "relative"
	MethodAbsolute  Method = "absolute"
	MethodSeries    Method = "series"
	MethodNone      Method = "none"
)

// Instant is one zone's view of the resolved moment.
type Instant struct {
	Datetime    time.Time `json:"datetime"`
	EpochMillis int64     `json:"epoch_millis"`
}

// Dual carries the resolved moment in the local zone and in UTC.
type Dual struct {
	Local     Instant `json:"local"`
	Reference Instant `json:"reference"`
}

// Result is the outcome of a parse. When Status is false, Time and Datetime
// are zero.
type Result struct {
	Status bool   `json:"status"`
	Method Method `json:"method"`
	// Time is the wall-clock value the strategy resolved, before any zone
	// conversion. Its location is always UTC; read only its fields.
	Time     time.Time `json:"time"`
	Datetime Dual      `json:"datetime"`
	Timezone string    `json:"timezone"`
}

// Label classifies a token.
type Label int

const (
	Invalid Label = iota
	Numeric
	Characters
)

func (l Label) String() string {
	switch l {
	case Numeric:
		return "numeric"
	case Characters:
		return "characters"
	default:
		return "invalid"
	}
}

// Token is a run of characters sharing one Label.
type Token struct {
	Text  string
	Label Label
}

// Era tags input written in a non-Gregorian year numbering.
type Era int

const (
	EraNone Era = iota
	EraReiwa
	EraThai
)

// Vocabulary is the read-only lookup surface the strategies consult.
// *corpus.Corpus implements it.
type Vocabulary interface {
	Month(word string) (int, bool)
	MonthDigits(word string) (string, bool)
	Canonical(word string) (string, bool)
	IsEra(word string) bool
	IsUnit(word string) bool
	Meridian(word string) (string, bool)
	Relative(chunk string) corpus.Phrase
	TimezoneOffset(name string) (int, bool)

	Apply(pattern, text string) string
	SplitNumeric(text string) []string
	HasSymbol(text string) bool
	Letters(text string) string
	OffsetPatterns() []*regexp.Regexp
	ZeroZone(text string) bool
	DubiousDate(text string) (string, bool)
	ExpandExpressions(text string) string
	ResolveEra(text string) (string, bool)
}

var _ Vocabulary = (*corpus.Corpus)(nil)

// slot is one field-lock cell. Once locked, later tokens cannot change it.
type slot struct {
	label  Label
	locked bool
	value  int
}

func (s *slot) lock(value int, label Label) {
	s.value = value
	s.label = label
	s.locked = true
}
