package github

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Repository represents a GitHub repository.
type Repository struct {
	Owner         string
	Name          string
	FullName      string // owner/name
	DefaultBranch string
	Size          int64
	Ref           string // branch, tag, or SHA to read; empty means DefaultBranch
}

// UnmarshalJSON flattens the nested owner object of the REST payload.
func (r *Repository) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string `json:"name"`
		Full  string `json:"full_name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
		DefaultBranch string `json:"default_branch"`
		Size          int64  `json:"size"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Repository{
		Owner:         raw.Owner.Login,
		Name:          raw.Name,
		FullName:      raw.Full,
		DefaultBranch: raw.DefaultBranch,
		Size:          raw.Size,
	}
	return nil
}

// TreeRef returns the ref whose tree should be listed.
func (r Repository) TreeRef() string {
	if r.Ref != "" {
		return r.Ref
	}
	return r.DefaultBranch
}

// EntryType is the object type of a tree entry.
type EntryType string

const (
	EntryBlob EntryType = "blob"
	EntryTree EntryType = "tree"
)

// TreeEntry represents a file or directory in a Git tree.
type TreeEntry struct {
	Path string    `json:"path"`
	Mode string    `json:"mode"`
	Type EntryType `json:"type"`
	SHA  string    `json:"sha"`
	Size int64     `json:"size"`
}

// TreeResponse represents the GitHub API tree response.
type TreeResponse struct {
	SHA       string      `json:"sha"`
	Tree      []TreeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

// Blobs returns the paths of file entries in tree order.
func (t *TreeResponse) Blobs() []string {
	var paths []string
	for _, entry := range t.Tree {
		if entry.Type == EntryBlob {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}

// RepoSpec is a parsed "owner/repo[@ref]" argument.
type RepoSpec struct {
	Owner string
	Repo  string
	Ref   string
}

// ParseRepoSpec parses "owner/repo" with an optional "@ref" suffix.
func ParseRepoSpec(spec string) (RepoSpec, error) {
	name, ref, hasRef := strings.Cut(spec, "@")
	if hasRef && ref == "" {
		return RepoSpec{}, fmt.Errorf("invalid repo spec: %s (empty ref)", spec)
	}

	owner, repo, ok := strings.Cut(name, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return RepoSpec{}, fmt.Errorf("invalid repo spec: %s (expected owner/repo[@ref])", spec)
	}

	return RepoSpec{Owner: owner, Repo: repo, Ref: ref}, nil
}

func (s RepoSpec) String() string {
	if s.Ref == "" {
		return s.Owner + "/" + s.Repo
	}
	return s.Owner + "/" + s.Repo + "@" + s.Ref
}
