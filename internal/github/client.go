// Package github provides the GitHub API calls used by datesift scan.
package github

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
)

// ClientOptions configures the GitHub API client.
type ClientOptions struct {
	AuthToken    string
	CacheDir     string
	CacheTTL     time.Duration
	DisableCache bool
}

// Client wraps the go-gh REST client.
type Client struct {
	rest *api.RESTClient
}

// NewClient creates a new GitHub API client with the given options.
func NewClient(opts ClientOptions) (*Client, error) {
	apiOpts := api.ClientOptions{
		AuthToken:   opts.AuthToken,
		CacheDir:    opts.CacheDir,
		CacheTTL:    opts.CacheTTL,
		EnableCache: !opts.DisableCache,
	}

	rest, err := api.NewRESTClient(apiOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return &Client{rest: rest}, nil
}

// GetRepo fetches a single repository.
func (c *Client) GetRepo(ctx context.Context, owner, repo string) (Repository, error) {
	var result Repository

	endpoint := fmt.Sprintf("repos/%s/%s", owner, repo)
	if err := c.rest.DoWithContext(ctx, "GET", endpoint, nil, &result); err != nil {
		return Repository{}, fmt.Errorf("failed to get repo %s/%s: %w", owner, repo, err)
	}
	if result.Size == 0 {
		return Repository{}, fmt.Errorf("repository is empty (no commits yet)")
	}
	if result.DefaultBranch == "" {
		return Repository{}, fmt.Errorf("repository %s/%s has no default branch", owner, repo)
	}

	return result, nil
}

// GetTree fetches the Git tree of repo.TreeRef() recursively.
func (c *Client) GetTree(ctx context.Context, repo Repository) (*TreeResponse, error) {
	var tree TreeResponse

	endpoint := fmt.Sprintf("repos/%s/%s/git/trees/%s?recursive=1",
		repo.Owner, repo.Name, url.PathEscape(repo.TreeRef()))

	if err := c.rest.DoWithContext(ctx, "GET", endpoint, nil, &tree); err != nil {
		return nil, fmt.Errorf("failed to get tree for %s@%s: %w", repo.FullName, repo.TreeRef(), err)
	}

	return &tree, nil
}
