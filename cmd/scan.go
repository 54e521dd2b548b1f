package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jparise/datesift/internal/config"
	"github.com/jparise/datesift/internal/github"
	"github.com/jparise/datesift/internal/sift"
	"github.com/jparise/datesift/internal/timeparse"
	"github.com/spf13/cobra"
)

type scanOptions struct {
	repo       string
	fullPath   bool
	ignoreCase bool
	within     string
	noCache    bool
	cacheDir   string
	cacheTTL   time.Duration
}

func newScanCmd(global *globalOptions) *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [flags] <pattern> [dir]",
		Short: "Report the dates embedded in file paths",
		Long: `scan walks a directory, or a GitHub repository tree with --repo, and reports
the date found in the path of every file that matches <pattern>.

<pattern> is a glob pattern to match files:
  *              Match any characters (e.g., "*.jpg")
  **             Match across directories (e.g., "**/*.log")
  ?              Match single character (e.g., "IMG_????????.jpg")
  [...]          Match character class (e.g., "backup-[0-9]*")
  {...}          Match alternatives (e.g., "*.{jpg,png}")

Paths are parsed with the series strategy unless --method says otherwise.
Files without a date are not reported.

Examples:
  datesift scan "*.jpg" ~/Pictures
  datesift scan --within 30d "backup-*" /var/backups
  datesift scan -p "logs/**/*.gz" .
  datesift scan --repo cli/cli@trunk "*.md"`,
		Args: cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.repo != "" && len(args) == 2 {
				return fmt.Errorf("a directory cannot be combined with --repo")
			}
			if opts.repo != "" {
				if _, err := github.ParseRepoSpec(opts.repo); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, global, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.repo, "repo", "",
		"scan a GitHub repository tree (owner/repo[@ref])")
	cmd.Flags().BoolVarP(&opts.fullPath, "full-path", "p", false,
		"match pattern against full path (default: basename only)")
	cmd.Flags().BoolVarP(&opts.ignoreCase, "ignore-case", "i", false,
		"case-insensitive pattern matching")
	cmd.Flags().StringVar(&opts.within, "within", "",
		"only report dates newer than now minus this duration (e.g., 30d, 2w, 12h)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false,
		"bypass cache, always fetch fresh data")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "",
		"override cache directory location")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", 24*time.Hour,
		"cache time-to-live (e.g., 1h, 30m, 24h)")

	return cmd
}

func runScan(cmd *cobra.Command, global *globalOptions, opts *scanOptions, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := newSession(cmd, global)
	if err != nil {
		return err
	}

	// Series is the default unless a method was configured.
	if !flagValueChanged(cmd, "method") && s.settings.Method == config.Defaults().Method {
		s.method = timeparse.MethodSeries
	}

	var within time.Duration
	if opts.within != "" {
		within, err = timeparse.ParseDuration(opts.within)
		if err != nil {
			return fmt.Errorf("invalid --within %q: %w", opts.within, err)
		}
	}

	dir := "."
	if len(args) == 2 {
		dir = args[1]
	}

	scan := &sift.ScanOptions{
		Options:    s.options(global.fail),
		Pattern:    args[0],
		Dir:        dir,
		Repo:       opts.repo,
		IgnoreCase: opts.ignoreCase,
		FullPath:   opts.fullPath,
		Within:     within,
		ClientOpts: github.ClientOptions{
			DisableCache: opts.noCache,
			CacheDir:     opts.cacheDir,
			CacheTTL:     opts.cacheTTL,
		},
	}
	s.logger.Debug("scanning", "pattern", scan.Pattern, "dir", scan.Dir, "repo", scan.Repo, "method", s.method)

	return s.sifter.Scan(ctx, scan)
}
