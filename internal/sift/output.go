package sift

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mgutz/ansi"
)

// SchemaVersion is written into every JSON envelope.
const SchemaVersion = "1"

// Format selects how records are written.
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPlain, FormatJSON, FormatJSONL:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q: must be one of plain, json, or jsonl", s)
	}
}

type envelope struct {
	SchemaVersion string    `json:"schema_version"`
	Command       string    `json:"command"`
	GeneratedAt   time.Time `json:"generated_at"`
	Data          []Record  `json:"data"`
}

// Output handles all output formatting with optional color support.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	format Format
	now    func() time.Time

	cyan   func(string) string
	green  func(string) string
	white  func(string) string
	yellow func(string) string
	red    func(string) string
	faint  func(string) string
}

// NewOutput creates a new Output. The now function anchors the age column and
// the JSON envelope timestamp.
func NewOutput(stdout, stderr io.Writer, format Format, colorize bool, now func() time.Time) *Output {
	if now == nil {
		now = time.Now
	}

	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		format: format,
		now:    now,
		cyan:   color("cyan"),
		green:  color("green+b"),
		white:  color("white"),
		yellow: color("yellow"),
		red:    color("red+b"),
		faint:  color("black+h"),
	}
}

// Records writes the records of one command in input order.
func (o *Output) Records(command string, records []Record) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.format {
	case FormatJSON:
		if records == nil {
			records = []Record{}
		}
		enc := json.NewEncoder(o.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(envelope{
			SchemaVersion: SchemaVersion,
			Command:       command,
			GeneratedAt:   o.now().UTC(),
			Data:          records,
		})
	case FormatJSONL:
		enc := json.NewEncoder(o.stdout)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	default:
		for _, r := range records {
			if _, err := fmt.Fprintln(o.stdout, o.plain(r)); err != nil {
				return err
			}
		}
		return nil
	}
}

// plain formats: input<TAB>method<TAB>reference datetime<TAB>age.
func (o *Output) plain(r Record) string {
	input := o.white(r.Input)
	if r.Source != "" {
		input = o.cyan(r.Source) + ":" + input
	}
	if !r.Status {
		return input + "\t" + o.red("-")
	}

	ref := r.Datetime.Reference.Datetime
	age := humanize.RelTime(ref, o.now(), "ago", "from now")
	return strings.Join([]string{
		input,
		o.green(string(r.Method)),
		ref.Format(time.RFC3339),
		o.faint(age),
	}, "\t")
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}
