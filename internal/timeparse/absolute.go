package timeparse

import (
	"strconv"
	"strings"
	"time"

	"github.com/jparise/datesift/internal/corpus"
)

const (
	maxMonth  = 12
	maxDay    = 31
	maxHour   = 24
	maxMinute = 60
	maxSecond = 60

	// Thai Buddhist years run 543 ahead of Gregorian ones.
	thaiYearOffset   = 543
	minThaiEpochYear = minYear + thaiYearOffset
)

// Padding order marks, one per token that produced a month or year guess.
const (
	orderMonth = 'm'
	orderYear  = 'y'

	swapOrderPattern = "mmy"
)

// Clock layouts, tried first with the meridian attached and then without.
var clockLayouts = []string{"3:04:05pm", "3:04pm", "15:04:05", "15:04"}

type absoluteStrategy struct {
	p *Parser
}

func (s *absoluteStrategy) Method() Method { return MethodAbsolute }

// Parse reads a free-form date with optional clock time, meridian, zone and
// era markers.
func (s *absoluteStrategy) Parse(text string, param Param) Result {
	run := &absoluteRun{p: s.p, param: param}
	return run.parse(text)
}

// candidate kinds produced by the token loop
type kind int

const (
	kindNone kind = iota
	kindMonth
	kindYear
)

// absoluteRun is the per-call state of the absolute strategy.
type absoluteRun struct {
	p      *Parser
	param  Param
	zone   zone
	era    Era
	tokens []Token

	year, month, day, clock slot
	hour, minute, second    int

	forced bool
	order  []byte
}

func (r *absoluteRun) parse(text string) Result {
	text = r.pretreat(text)
	r.normalize(text)
	r.interpret()

	wall, ok := r.resolve()
	if !ok {
		return Result{Method: MethodAbsolute}
	}
	return r.p.result(MethodAbsolute, wall, r.zone)
}

// pretreat settles the zone, rewrites era years and expands compact
// notations.
func (r *absoluteRun) pretreat(text string) string {
	text = fold(text)
	if r.param.Timezone == "" {
		if z, ok := r.p.textZone(text); ok {
			r.zone = z
		}
	} else {
		r.zone = r.p.explicitZone(r.param.Timezone)
	}
	if t, ok := r.p.vocab.ResolveEra(text); ok {
		text = t
		r.era = EraReiwa
	}
	return r.p.vocab.ExpandExpressions(text)
}

// normalize builds the token stream. A trusted year-first date is tokenized
// on its own and placed ahead of everything else.
func (r *absoluteRun) normalize(text string) {
	v := r.p.vocab
	if d, ok := v.DubiousDate(text); ok {
		r.tokens = append(r.tokens, tokenize(d)...)
		text = strings.ReplaceAll(text, d, "")
	}

	text = r.p.eliminateNoise(text)
	text, era := r.p.unitize(text)
	if era != EraNone {
		r.era = era
	}
	text = v.Apply(corpus.SymbolPoint, text)
	text = reorderMeridian(text)

	chunks := r.p.chunks(text)
	if !r.zone.isSet() && r.param.Timezone == "" {
		r.chunkZone(chunks)
	}
	r.tokens = append(r.tokens, tokenize(joinChunks(r.vocabChunks(chunks)))...)
}

// chunkZone applies the last timezone abbreviation among the chunks.
func (r *absoluteRun) chunkZone(chunks []string) {
	for _, c := range chunks {
		if len(c) < 2 {
			continue
		}
		if offset, ok := r.p.vocab.TimezoneOffset(c); ok {
			r.zone = zone{name: c, offset: offset}
		}
	}
}

// vocabChunks keeps numbers and recognized vocabulary and blanks the rest.
// "ago" after a duration unit is dropped.
func (r *absoluteRun) vocabChunks(chunks []string) []string {
	out := make([]string, 0, len(chunks))
	prev := ""
	for _, c := range chunks {
		switch {
		case isDigits(c):
			out = append(out, c)
		case c == "ago" && r.p.vocab.IsUnit(prev):
		default:
			canonical, _ := r.p.vocab.Canonical(c)
			out = append(out, canonical)
		}
		if c != "" {
			prev = c
		}
	}
	return out
}

// interpret walks the tokens once, locking fields as they resolve.
func (r *absoluteRun) interpret() {
	for i, tok := range r.tokens {
		switch tok.Label {
		case Numeric:
			if strings.Contains(tok.Text, ":") && len(tok.Text) > 2 && !r.clock.locked {
				r.parseClock(i, tok.Text)
			}
			n, k := r.parseNumber(tok.Text)
			r.record(k)
			r.apply(n, k, tok.Label, false)
		case Characters:
			n, ok := r.p.vocab.Month(tok.Text)
			if !ok {
				r.record(kindNone)
				continue
			}
			r.forced = true
			r.record(kindMonth)
			r.apply(n, kindMonth, tok.Label, true)
		}
	}
}

func (r *absoluteRun) record(k kind) {
	switch k {
	case kindMonth:
		r.order = append(r.order, orderMonth)
	case kindYear:
		r.order = append(r.order, orderYear)
	}
}

// parseNumber classifies a numeric token as a day-or-month or a year.
func (r *absoluteRun) parseNumber(text string) (int, kind) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, kindNone
	}
	switch {
	case n >= 1 && n <= maxDay:
		return n, kindMonth
	case n < minYear || n > maxYear:
		return 0, kindNone
	case r.param.Strict && r.era == EraNone && n > r.p.today().Year():
		return 0, kindNone
	}
	return n, kindYear
}

// apply assigns a candidate under the field-lock rules.
func (r *absoluteRun) apply(n int, k kind, label Label, forced bool) {
	switch k {
	case kindYear:
		if !r.year.locked {
			r.year.lock(n, label)
		}
	case kindMonth:
		switch {
		case forced:
			// A named month displaces an earlier numeric month guess into
			// the day.
			if !r.day.locked && r.month.value > 0 {
				r.day.lock(r.month.value, r.month.label)
			}
			r.month.lock(n, label)
		case n <= maxMonth && !r.month.locked:
			r.month.lock(n, label)
		case n <= maxDay && !r.day.locked:
			r.day.lock(n, label)
		}
	}
}

// parseClock reads a clock time, consulting the neighboring tokens for a
// meridian. The clock locks even when no layout matches.
func (r *absoluteRun) parseClock(i int, text string) {
	meridian := r.siblingMeridian(i)
	var t time.Time
	var err error
	if meridian != "" {
		for _, layout := range clockLayouts {
			if t, err = time.Parse(layout, text+meridian); err == nil {
				break
			}
		}
	}
	if meridian == "" || err != nil {
		for _, layout := range clockLayouts {
			if t, err = time.Parse(layout, text); err == nil {
				break
			}
		}
	}
	if err == nil {
		r.hour, r.minute, r.second = t.Hour(), t.Minute(), t.Second()
	}
	r.clock.lock(r.hour*3600+r.minute*60+r.second, Numeric)
}

func (r *absoluteRun) siblingMeridian(i int) string {
	if i+1 < len(r.tokens) {
		if m, ok := r.p.vocab.Meridian(r.tokens[i+1].Text); ok {
			return m
		}
	}
	if i > 0 {
		if m, ok := r.p.vocab.Meridian(r.tokens[i-1].Text); ok {
			return m
		}
	}
	return ""
}

// resolve validates the locked fields and builds the wall-clock value.
func (r *absoluteRun) resolve() (time.Time, bool) {
	if !r.year.locked || !r.month.locked || !r.day.locked {
		return time.Time{}, false
	}
	year, month, day := r.year.value, r.month.value, r.day.value

	// "06-07-2023" reads as month, month, year; take it as day-month-year.
	if !r.forced && string(r.order) == swapOrderPattern && day <= maxMonth && month <= maxMonth {
		month, day = day, month
	}

	if r.era == EraThai && year > minThaiEpochYear {
		year -= thaiYearOffset
	}

	if year < minYear || month > maxMonth || day > maxDay ||
		r.hour > maxHour || r.minute > maxMinute || r.second > maxSecond {
		return time.Time{}, false
	}
	wall := time.Date(year, time.Month(month), day, r.hour, r.minute, r.second, 0, time.UTC)
	if wall.Day() != day {
		r.p.logger.Debug("absolute: invalid calendar date", "year", year, "month", month, "day", day)
		return time.Time{}, false
	}

	if r.param.Strict && r.era == EraNone {
		ref := r.p.reconcile(wall, r.zone).Reference.Datetime
		if ref.After(r.p.now()) {
			r.p.logger.Debug("absolute: future date rejected", "reference", ref)
			return time.Time{}, false
		}
	}
	return wall, true
}
