package sift

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jparise/datesift/internal/github"
)

// Scan lists the files under opts.Dir, or the tree of opts.Repo, keeps those
// matching opts.Pattern, and reports the date found in each path. Paths
// without a date are left out.
func (s *Sifter) Scan(ctx context.Context, opts *ScanOptions) error {
	var (
		source string
		paths  []string
		err    error
	)
	if opts.Repo != "" {
		source, paths, err = s.listRepo(ctx, opts)
	} else {
		paths, err = listLocal(opts.Dir)
	}
	if err != nil {
		return err
	}

	pattern := opts.Pattern
	if pattern == "" {
		pattern = "*"
	}
	paths, err = filterByPattern(paths, pattern, opts.FullPath, opts.IgnoreCase)
	if err != nil {
		return err
	}

	records, err := s.parseAll(ctx, source, paths, &opts.Options)
	if err != nil {
		return err
	}

	dated := records[:0]
	for _, r := range records {
		if s.within(r, opts.Within) {
			dated = append(dated, r)
		}
	}
	s.logger.Debug("scan finished", "source", source, "paths", len(paths), "dated", len(dated))

	if err := s.output.Records("scan", dated); err != nil {
		return err
	}
	if opts.Fail && len(dated) == 0 {
		return ErrNoMatch
	}
	return nil
}

func (s *Sifter) listRepo(ctx context.Context, opts *ScanOptions) (string, []string, error) {
	spec, err := github.ParseRepoSpec(opts.Repo)
	if err != nil {
		return "", nil, err
	}

	client, err := github.NewClient(opts.ClientOpts)
	if err != nil {
		return "", nil, err
	}

	repo, err := client.GetRepo(ctx, spec.Owner, spec.Repo)
	if err != nil {
		return "", nil, err
	}
	repo.Ref = spec.Ref

	tree, err := client.GetTree(ctx, repo)
	if err != nil {
		return "", nil, err
	}
	if tree.Truncated {
		s.output.Warningf("%s: exceeds GitHub's API limit (100k files or 7MB) - results are incomplete", repo.FullName)
	}

	return repo.FullName, tree.Blobs(), nil
}

// listLocal returns every regular file under dir, slash-separated and
// relative to dir, in lexical order.
func listLocal(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var paths []string
	err = doublestar.GlobWalk(os.DirFS(dir), "**", func(p string, _ os.DirEntry) error {
		paths = append(paths, p)
		return nil
	}, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return paths, nil
}

func filterByPattern(paths []string, pattern string, fullPath, ignoreCase bool) ([]string, error) {
	if ignoreCase {
		pattern = strings.ToLower(pattern)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}

	var filtered []string
	for _, p := range paths {
		matchPath := p
		if !fullPath {
			matchPath = path.Base(matchPath)
		}
		if ignoreCase {
			matchPath = strings.ToLower(matchPath)
		}

		matched, err := doublestar.Match(pattern, matchPath)
		if err != nil {
			return nil, fmt.Errorf("pattern %q failed to match path %q: %w", pattern, p, err)
		}
		if matched {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}
