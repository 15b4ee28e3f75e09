package image

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "defaults filled in",
			opts: Options{Tag: "opendevin/swe-bench:latest"},
			want: []string{"build", "-t", "opendevin/swe-bench:latest", "-f", "Dockerfile", "."},
		},
		{
			name: "explicit dockerfile and context",
			opts: Options{
				Tag:        "opendevin/swe-bench:latest",
				Dockerfile: "docker/Dockerfile",
				Context:    ".",
			},
			want: []string{"build", "-t", "opendevin/swe-bench:latest", "-f", "docker/Dockerfile", "."},
		},
		{
			name: "build arg appended",
			opts: Options{
				Tag:        "opendevin/swe-bench:latest",
				Dockerfile: "docker/Dockerfile",
				BuildArgs:  [][2]string{{"TARGETARCH", "x86_64"}},
			},
			want: []string{
				"build", "-t", "opendevin/swe-bench:latest", "-f", "docker/Dockerfile",
				"--build-arg", "TARGETARCH=x86_64", ".",
			},
		},
		{
			name: "aarch64 passed verbatim",
			opts: Options{
				Tag:       "opendevin/swe-bench:latest",
				BuildArgs: [][2]string{{"TARGETARCH", "aarch64"}},
			},
			want: []string{
				"build", "-t", "opendevin/swe-bench:latest", "-f", "Dockerfile",
				"--build-arg", "TARGETARCH=aarch64", ".",
			},
		},
		{
			name: "pull and no-cache flags",
			opts: Options{Tag: "repo/img:tag", Pull: true, NoCache: true},
			want: []string{"build", "-t", "repo/img:tag", "-f", "Dockerfile", "--pull", "--no-cache", "."},
		},
		{
			name: "empty build arg key skipped",
			opts: Options{Tag: "repo/img:tag", BuildArgs: [][2]string{{"", "x"}, {"K", "v"}}},
			want: []string{"build", "-t", "repo/img:tag", "-f", "Dockerfile", "--build-arg", "K=v", "."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildArgs(tt.opts)
			if err != nil {
				t.Fatalf("buildArgs failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("args = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("args[%d] = %q, want %q\nfull: %v", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestBuildArgsContextIsLast(t *testing.T) {
	got, err := buildArgs(Options{
		Tag:       "repo/img:tag",
		Context:   "subdir",
		BuildArgs: [][2]string{{"A", "1"}, {"B", "2"}},
		NoCache:   true,
	})
	if err != nil {
		t.Fatalf("buildArgs failed: %v", err)
	}
	if got[len(got)-1] != "subdir" {
		t.Fatalf("last arg = %q, want context directory", got[len(got)-1])
	}
}

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		wantErr bool
	}{
		{name: "valid", tag: "opendevin/swe-bench:latest"},
		{name: "empty", tag: "", wantErr: true},
		{name: "uppercase", tag: "OpenDevin/swe-bench:latest", wantErr: true},
		{name: "embedded space", tag: "repo/img :tag", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTag(tt.tag)
			if tt.wantErr && err == nil {
				t.Fatalf("validateTag(%q) succeeded, want error", tt.tag)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("validateTag(%q) failed: %v", tt.tag, err)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidOptions) {
				t.Fatalf("error = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestBuildRejectsInvalidTag(t *testing.T) {
	err := Build(context.Background(), Options{Tag: "BAD TAG"})
	if !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("error = %v, want ErrInvalidOptions", err)
	}
}

func TestHostArch(t *testing.T) {
	arch, err := HostArch(context.Background())
	if err != nil {
		t.Fatalf("HostArch failed: %v", err)
	}
	if arch == "" {
		t.Fatal("HostArch returned empty string")
	}
	if strings.TrimSpace(arch) != arch {
		t.Fatalf("HostArch = %q, contains surrounding whitespace", arch)
	}
}
