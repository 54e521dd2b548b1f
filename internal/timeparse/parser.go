// Package timeparse extracts calendar dates and times from noisy,
// multilingual text.
//
// Four strategies cover the supported shapes of input: epoch timestamps,
// relative phrases ("3 hours ago"), dates buried in digit runs of URLs and
// file names, and free-form absolute dates. Parse tries them in a fixed order
// and returns the first success.
//
// The package also carries the small time and duration parsers used by the
// command line.
package timeparse

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/jparise/datesift/internal/corpus"
)

// Strategy is one way of reading a date out of text.
type Strategy interface {
	Method() Method
	Parse(text string, param Param) Result
}

// Parser holds the capabilities shared by every strategy. It is immutable
// after New and safe for concurrent use.
type Parser struct {
	vocab  Vocabulary
	now    func() time.Time
	loc    *time.Location
	logger *slog.Logger

	strategies []Strategy
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// WithLocation sets the local zone.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		p.loc = loc
	}
}

// WithVocabulary replaces the built-in corpus.
func WithVocabulary(v Vocabulary) Option {
	return func(p *Parser) {
		p.vocab = v
	}
}

// WithLogger enables debug tracing of strategy decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// New returns a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		vocab:  corpus.Default(),
		now:    time.Now,
		loc:    time.Local,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.loc == nil {
		p.loc = time.Local
	}

	// Dispatch order.
	p.strategies = []Strategy{
		&timestampStrategy{p},
		&relativeStrategy{p},
		&absoluteStrategy{p},
		&seriesStrategy{p},
	}
	return p
}

// Strategies returns the strategies in dispatch order.
func (p *Parser) Strategies() []Strategy {
	return append([]Strategy(nil), p.strategies...)
}

// Strategy returns the strategy for m.
func (p *Parser) Strategy(m Method) (Strategy, bool) {
	for _, s := range p.strategies {
		if s.Method() == m {
			return s, true
		}
	}
	return nil, false
}

// Parse tries each strategy in order and returns the first success, or a
// failed Result with MethodNone.
func (p *Parser) Parse(text string, param Param) Result {
	for _, s := range p.strategies {
		if r := s.Parse(text, param); r.Status {
			p.logger.Debug("strategy matched", "method", r.Method, "text", text)
			return r
		}
	}
	return Result{Method: MethodNone}
}

// ParseMethod parses text with the named strategy. MethodAuto dispatches
// like Parse.
func (p *Parser) ParseMethod(m Method, text string, param Param) Result {
	if m == MethodAuto || m == "" {
		return p.Parse(text, param)
	}
	s, ok := p.Strategy(m)
	if !ok {
		return Result{Method: MethodNone}
	}
	return s.Parse(text, param)
}

// ParseTimestamp reads a 10-digit epoch seconds or 13-digit epoch milliseconds value.
func (p *Parser) ParseTimestamp(text string, param Param) Result {
	return p.ParseMethod(MethodTimestamp, text, param)
}

// ParseRelative reads phrases like "3 hours ago" or "30天前".
func (p *Parser) ParseRelative(text string, param Param) Result {
	return p.ParseMethod(MethodRelative, text, param)
}

// ParseAbsolute reads free-form calendar dates.
func (p *Parser) ParseAbsolute(text string, param Param) Result {
	return p.ParseMethod(MethodAbsolute, text, param)
}

// ParseSeries reads a YYYYMMDD date embedded in a digit run.
func (p *Parser) ParseSeries(text string, param Param) Result {
	return p.ParseMethod(MethodSeries, text, param)
}

// ParseMethodName validates a method name.
func ParseMethodName(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodAuto, MethodTimestamp, MethodRelative, MethodAbsolute, MethodSeries:
		return m, nil
	}
	return "", fmt.Errorf("invalid method %q (must be auto, timestamp, relative, absolute, or series)", s)
}

var defaultParser = sync.OnceValue(func() *Parser { return New() })

// Parse dispatches text with the default parser.
func Parse(text string, param Param) Result {
	return defaultParser().Parse(text, param)
}

// ParseTimestamp reads a 10-digit epoch seconds or 13-digit epoch
// milliseconds value.
func ParseTimestamp(text string, param Param) Result {
	return defaultParser().ParseTimestamp(text, param)
}

// ParseRelative reads phrases like "3 hours ago" or "30天前".
func ParseRelative(text string, param Param) Result {
	return defaultParser().ParseRelative(text, param)
}

// ParseAbsolute reads free-form dates like "aug 06 2023 10h42".
func ParseAbsolute(text string, param Param) Result {
	return defaultParser().ParseAbsolute(text, param)
}

// ParseSeries reads a YYYYMMDD date embedded in a digit run.
func ParseSeries(text string, param Param) Result {
	return defaultParser().ParseSeries(text, param)
}

// today returns the current wall clock in the local zone.
func (p *Parser) today() time.Time {
	return p.now().In(p.loc)
}
