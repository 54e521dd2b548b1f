package github

import (
	"context"
	"os"
	"testing"
	"time"

	"gopkg.in/h2non/gock.v1"
)

func TestMain(m *testing.M) {
	// Disable real HTTP requests during tests
	gock.DisableNetworking()
	os.Exit(m.Run())
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(ClientOptions{
		AuthToken:    "fake-token",
		DisableCache: true,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		opts ClientOptions
	}{
		{
			name: "default options",
			opts: ClientOptions{AuthToken: "fake-token", CacheTTL: 24 * time.Hour},
		},
		{
			name: "cache disabled",
			opts: ClientOptions{AuthToken: "fake-token", DisableCache: true},
		},
		{
			name: "custom cache directory",
			opts: ClientOptions{AuthToken: "fake-token", CacheDir: "/tmp/test-cache", CacheTTL: time.Hour},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.opts)
			if err != nil {
				t.Fatalf("NewClient() unexpected error: %v", err)
			}
			if client == nil || client.rest == nil {
				t.Error("NewClient() returned an unusable client")
			}
		})
	}
}

func TestGetRepo(t *testing.T) {
	tests := []struct {
		name       string
		owner      string
		repo       string
		mockStatus int
		mockBody   string
		wantBranch string
		wantErr    bool
	}{
		{
			name:       "valid repository",
			owner:      "octocat",
			repo:       "Hello-World",
			mockStatus: 200,
			mockBody: `{
				"name": "Hello-World",
				"full_name": "octocat/Hello-World",
				"owner": {"login": "octocat"},
				"default_branch": "main",
				"size": 1024
			}`,
			wantBranch: "main",
		},
		{
			name:       "repository not found",
			owner:      "octocat",
			repo:       "nonexistent",
			mockStatus: 404,
			mockBody:   `{"message": "Not Found"}`,
			wantErr:    true,
		},
		{
			name:       "private repository forbidden",
			owner:      "octocat",
			repo:       "private",
			mockStatus: 403,
			mockBody:   `{"message": "Forbidden"}`,
			wantErr:    true,
		},
		{
			name:       "empty repository",
			owner:      "octocat",
			repo:       "empty-repo",
			mockStatus: 200,
			mockBody: `{
				"name": "empty-repo",
				"full_name": "octocat/empty-repo",
				"owner": {"login": "octocat"},
				"default_branch": "main",
				"size": 0
			}`,
			wantErr: true,
		},
		{
			name:       "repository without default branch",
			owner:      "octocat",
			repo:       "no-branch-repo",
			mockStatus: 200,
			mockBody: `{
				"name": "no-branch-repo",
				"full_name": "octocat/no-branch-repo",
				"owner": {"login": "octocat"},
				"default_branch": "",
				"size": 1024
			}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(gock.Off)

			gock.New("https://api.github.com").
				Get("/repos/" + tt.owner + "/" + tt.repo).
				Reply(tt.mockStatus).
				JSON(tt.mockBody)

			repo, err := newTestClient(t).GetRepo(context.Background(), tt.owner, tt.repo)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetRepo() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if repo.Name != tt.repo {
					t.Errorf("GetRepo() repo.Name = %v, want %v", repo.Name, tt.repo)
				}
				if repo.Owner != tt.owner {
					t.Errorf("GetRepo() repo.Owner = %v, want %v", repo.Owner, tt.owner)
				}
				if repo.DefaultBranch != tt.wantBranch {
					t.Errorf("GetRepo() repo.DefaultBranch = %v, want %v", repo.DefaultBranch, tt.wantBranch)
				}
			}

			if !gock.IsDone() {
				t.Errorf("not all mocks were called: %v", gock.Pending())
			}
		})
	}
}

func TestGetTree(t *testing.T) {
	tests := []struct {
		name          string
		repo          Repository
		wantRef       string
		mockStatus    int
		mockBody      string
		wantTruncated bool
		wantBlobs     []string
		wantErr       bool
	}{
		{
			name:       "default branch",
			repo:       Repository{Owner: "octocat", Name: "photos", DefaultBranch: "main"},
			wantRef:    "main",
			mockStatus: 200,
			mockBody: `{
				"sha": "abc123",
				"tree": [
					{"path": "2023", "mode": "040000", "type": "tree", "sha": "aaa"},
					{"path": "2023/IMG_20230715_101500.jpg", "mode": "100644", "type": "blob", "sha": "def456", "size": 1234},
					{"path": "README.md", "mode": "100644", "type": "blob", "sha": "ghi789", "size": 5678}
				],
				"truncated": false
			}`,
			wantBlobs: []string{"2023/IMG_20230715_101500.jpg", "README.md"},
		},
		{
			name:       "explicit ref",
			repo:       Repository{Owner: "octocat", Name: "photos", DefaultBranch: "main", Ref: "v1.0"},
			wantRef:    "v1.0",
			mockStatus: 200,
			mockBody: `{
				"sha": "abc123",
				"tree": [{"path": "backup-20220101.tar", "mode": "100644", "type": "blob", "sha": "d", "size": 1}],
				"truncated": true
			}`,
			wantTruncated: true,
			wantBlobs:     []string{"backup-20220101.tar"},
		},
		{
			name:       "invalid branch",
			repo:       Repository{Owner: "octocat", Name: "photos", DefaultBranch: "nonexistent"},
			wantRef:    "nonexistent",
			mockStatus: 404,
			mockBody:   `{"message": "Not Found"}`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(gock.Off)

			gock.New("https://api.github.com").
				Get("/repos/"+tt.repo.Owner+"/"+tt.repo.Name+"/git/trees/"+tt.wantRef).
				MatchParam("recursive", "1").
				Reply(tt.mockStatus).
				JSON(tt.mockBody)

			tree, err := newTestClient(t).GetTree(context.Background(), tt.repo)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetTree() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if tree.Truncated != tt.wantTruncated {
					t.Errorf("GetTree() truncated = %v, want %v", tree.Truncated, tt.wantTruncated)
				}
				got := tree.Blobs()
				if len(got) != len(tt.wantBlobs) {
					t.Fatalf("Blobs() = %v, want %v", got, tt.wantBlobs)
				}
				for i := range got {
					if got[i] != tt.wantBlobs[i] {
						t.Errorf("Blobs()[%d] = %q, want %q", i, got[i], tt.wantBlobs[i])
					}
				}
			}

			if !gock.IsDone() {
				t.Errorf("not all mocks were called: %v", gock.Pending())
			}
		})
	}
}

func TestGetTree_ContextCanceled(t *testing.T) {
	t.Cleanup(gock.Off)

	gock.New("https://api.github.com").
		Get("/repos/octocat/photos/git/trees/main").
		Reply(200).
		JSON(`{"sha": "abc", "tree": [], "truncated": false}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t).GetTree(ctx, Repository{Owner: "octocat", Name: "photos", DefaultBranch: "main"})
	if err == nil {
		t.Error("GetTree() expected error for canceled context, got nil")
	}
}
