package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/datesift/internal/config"
	"github.com/jparise/datesift/internal/sift"
	"github.com/jparise/datesift/internal/timeparse"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

// methodFlag is a strategy name validated at flag parse time.
type methodFlag string

func (m *methodFlag) String() string { return string(*m) }

func (m *methodFlag) Set(v string) error {
	method, err := timeparse.ParseMethodName(v)
	if err != nil {
		return err
	}
	*m = methodFlag(method)
	return nil
}

func (m *methodFlag) Type() string { return "method" }

// formatFlag is an output format validated at flag parse time.
type formatFlag string

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Set(v string) error {
	format, err := sift.ParseFormat(v)
	if err != nil {
		return err
	}
	*f = formatFlag(format)
	return nil
}

func (f *formatFlag) Type() string { return "format" }

// globalOptions holds the flags shared by every command.
type globalOptions struct {
	method   methodFlag
	tz       string
	strict   bool
	now      string
	location string
	format   formatFlag
	color    colorMode
	jobs     int
	fail     bool
	config   string
	verbose  bool
}

var version = "dev"

func newRootCmd() *cobra.Command {
	opts := &globalOptions{
		method: methodFlag(timeparse.MethodAuto),
		format: formatFlag(sift.FormatPlain),
		color:  colorAuto,
		jobs:   config.Defaults().Jobs,
	}

	root := &cobra.Command{
		Use:   "datesift [flags] [text...]",
		Short: "Extract dates and times from free text",
		Long: `datesift finds the date or time in each text argument, or in each line of
standard input when no arguments are given.

Four strategies are tried in order until one succeeds:
  timestamp      10- or 13-digit Unix epoch values
  relative       "3 hours ago", "30天前", "5時間前", "just now"
  absolute       calendar dates in many languages, with clock and zone
  series         YYYYMMDD runs inside URLs and file names

Settings are read from $XDG_CONFIG_HOME/datesift/config.toml (or
~/.config/datesift/config.toml), then DATESIFT_* environment variables,
then flags.

Examples:
  datesift "2023-07-30T14:12:51+02:00"
  datesift --tz cst "2002年10月13日 5:50 PM"
  datesift --method relative "3 hours ago" "2 weeks ago"
  datesift --format jsonl < headlines.txt
  datesift --now 2026-10-19 --strict "26 ก.ค. 2566"`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}

	pf := root.PersistentFlags()
	pf.Var(&opts.method, "method",
		"strategy: auto, timestamp, relative, absolute, series")
	pf.StringVar(&opts.tz, "tz", "",
		"timezone of the input text (e.g., utc, cst, jst)")
	pf.BoolVar(&opts.strict, "strict", false,
		"reject future dates and implausible input")
	pf.StringVar(&opts.now, "now", "",
		"pin the current time (YYYY-MM-DD, \"YYYY-MM-DD HH:MM:SS\", or RFC3339)")
	pf.StringVar(&opts.location, "location", "",
		"IANA name of the local timezone (default: system)")
	pf.Var(&opts.format, "format",
		"output format: plain, json, jsonl")
	pf.Var(&opts.color, "color",
		"colorize output: auto, always, never")
	pf.IntVarP(&opts.jobs, "jobs", "j", opts.jobs,
		"maximum concurrent parses")
	pf.BoolVar(&opts.fail, "fail", false,
		"exit non-zero when an input yields no date")
	pf.StringVar(&opts.config, "config", "",
		"config file (default: $XDG_CONFIG_HOME/datesift/config.toml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false,
		"log parsing decisions to stderr")

	root.AddCommand(newScanCmd(opts))
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

// session is everything a command needs once flags and config are resolved.
type session struct {
	settings config.Settings
	method   timeparse.Method
	param    timeparse.Param
	logger   *slog.Logger
	sifter   *sift.Sifter
}

// resolveSettings layers flags over the config file and environment.
func resolveSettings(cmd *cobra.Command, opts *globalOptions) (config.Settings, error) {
	s, err := config.Load(opts.config)
	if err != nil {
		return config.Settings{}, err
	}

	copyIfChanged(cmd, "method", func() { s.Method = string(opts.method) })
	copyIfChanged(cmd, "tz", func() { s.Timezone = opts.tz })
	copyIfChanged(cmd, "strict", func() { s.Strict = opts.strict })
	copyIfChanged(cmd, "location", func() { s.Location = opts.location })
	copyIfChanged(cmd, "format", func() { s.Format = string(opts.format) })
	copyIfChanged(cmd, "jobs", func() { s.Jobs = opts.jobs })
	return s, nil
}

func copyIfChanged(cmd *cobra.Command, name string, fn func()) {
	if flagValueChanged(cmd, name) {
		fn()
	}
}

func flagValueChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

func newSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	settings, err := resolveSettings(cmd, opts)
	if err != nil {
		return nil, err
	}

	if settings.Jobs < 1 || settings.Jobs > 100 {
		return nil, fmt.Errorf("--jobs must be between 1 and 100, got %d", settings.Jobs)
	}

	method, err := timeparse.ParseMethodName(settings.Method)
	if err != nil {
		return nil, fmt.Errorf("invalid method: %w", err)
	}

	format, err := sift.ParseFormat(settings.Format)
	if err != nil {
		return nil, err
	}

	loc := time.Local
	if settings.Location != "" {
		loc, err = time.LoadLocation(settings.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid location %q: %w", settings.Location, err)
		}
	}

	now := time.Now
	if opts.now != "" {
		t, err := timeparse.ParseNow(opts.now, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid --now %q: %w", opts.now, err)
		}
		now = timeparse.FixedClock(t)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if settings.Path != "" {
		logger.Debug("loaded config", "path", settings.Path)
	}

	var colorize bool
	switch opts.color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		terminal := term.FromEnv()
		colorize = terminal.IsColorEnabled() && format == sift.FormatPlain
	}

	parser := timeparse.New(
		timeparse.WithClock(now),
		timeparse.WithLocation(loc),
		timeparse.WithLogger(logger),
	)
	output := sift.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, colorize, now)

	return &session{
		settings: settings,
		method:   method,
		param:    timeparse.Param{Timezone: settings.Timezone, Strict: settings.Strict},
		logger:   logger,
		sifter:   sift.New(parser, output, now, logger),
	}, nil
}

func (s *session) options(fail bool) sift.Options {
	return sift.Options{
		Method: s.method,
		Param:  s.param,
		Jobs:   s.settings.Jobs,
		Fail:   fail,
	}
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}

func runParse(cmd *cobra.Command, opts *globalOptions, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := newSession(cmd, opts)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	o := s.options(opts.fail)
	return s.sifter.Texts(ctx, inputs, &o)
}
