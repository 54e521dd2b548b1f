// Package sift runs the date parser over batches of inputs and reports the
// results.
package sift

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jparise/datesift/internal/timeparse"
	"golang.org/x/sync/semaphore"
)

// ErrNoMatch is returned by a run with Options.Fail set when some input
// yields no date.
var ErrNoMatch = errors.New("no date found")

// Parser is the part of timeparse.Parser a Sifter needs.
type Parser interface {
	ParseMethod(m timeparse.Method, text string, param timeparse.Param) timeparse.Result
}

// Record is one parsed input.
type Record struct {
	Source string `json:"source,omitempty"` // directory or repository the input came from
	Input  string `json:"input"`
	timeparse.Result
}

// Sifter orchestrates parsing and reporting.
type Sifter struct {
	parser Parser
	output *Output
	now    func() time.Time
	logger *slog.Logger
}

// New creates a new Sifter. A nil now uses time.Now and a nil logger discards.
func New(parser Parser, output *Output, now func() time.Time, logger *slog.Logger) *Sifter {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sifter{
		parser: parser,
		output: output,
		now:    now,
		logger: logger,
	}
}

// Texts parses every input and writes one record per input, in input order.
func (s *Sifter) Texts(ctx context.Context, inputs []string, opts *Options) error {
	records, err := s.parseAll(ctx, "", inputs, opts)
	if err != nil {
		return err
	}

	if err := s.output.Records("parse", records); err != nil {
		return err
	}

	if opts.Fail {
		for _, r := range records {
			if !r.Status {
				return ErrNoMatch
			}
		}
	}
	return nil
}

// parseAll fans the inputs out over opts.Jobs workers. Results keep the
// position of their input.
func (s *Sifter) parseAll(ctx context.Context, source string, inputs []string, opts *Options) ([]Record, error) {
	records := make([]Record, len(inputs))

	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(max(opts.Jobs, 1)))

	for i, input := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return nil, err
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			result := s.parser.ParseMethod(opts.Method, input, opts.Param)
			if !result.Status {
				s.logger.Debug("no date", "input", input, "method", opts.Method)
			}
			records[i] = Record{Source: source, Input: input, Result: result}
		}()
	}

	wg.Wait()
	return records, nil
}

// within reports whether r resolved to an instant no older than d before now.
// A zero d accepts every successful record.
func (s *Sifter) within(r Record, d time.Duration) bool {
	if !r.Status {
		return false
	}
	if d <= 0 {
		return true
	}
	return !r.Datetime.Reference.Datetime.Before(s.now().Add(-d))
}
