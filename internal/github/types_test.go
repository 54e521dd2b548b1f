package github

import "testing"

func TestParseRepoSpec(t *testing.T) {
	tests := []struct {
		spec    string
		want    RepoSpec
		wantErr bool
	}{
		{spec: "cli/cli", want: RepoSpec{Owner: "cli", Repo: "cli"}},
		{spec: "cli/cli@trunk", want: RepoSpec{Owner: "cli", Repo: "cli", Ref: "trunk"}},
		{spec: "cli/cli@v2.0.0", want: RepoSpec{Owner: "cli", Repo: "cli", Ref: "v2.0.0"}},
		{spec: "cli", wantErr: true},
		{spec: "cli/", wantErr: true},
		{spec: "/cli", wantErr: true},
		{spec: "cli/cli/extra", wantErr: true},
		{spec: "cli/cli@", wantErr: true},
		{spec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseRepoSpec(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRepoSpec(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRepoSpec(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.spec {
				t.Errorf("String() = %q, want %q", got.String(), tt.spec)
			}
		})
	}
}

func TestTreeRef(t *testing.T) {
	r := Repository{DefaultBranch: "main"}
	if got := r.TreeRef(); got != "main" {
		t.Errorf("TreeRef() = %q, want main", got)
	}
	r.Ref = "release"
	if got := r.TreeRef(); got != "release" {
		t.Errorf("TreeRef() = %q, want release", got)
	}
}
