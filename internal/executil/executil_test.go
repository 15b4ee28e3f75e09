package executil

import (
	"context"
	"errors"
	"testing"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "plain args untouched",
			args: []string{"docker", "build", "-t", "opendevin/swe-bench:latest"},
			want: "docker build -t opendevin/swe-bench:latest",
		},
		{
			name: "whitespace quoted",
			args: []string{"sh", "-c", "echo hello"},
			want: "sh -c 'echo hello'",
		},
		{
			name: "empty arg quoted",
			args: []string{"cmd", ""},
			want: "cmd ''",
		},
		{
			name: "single quote escaped",
			args: []string{"echo", "it's"},
			want: `echo 'it'\''s'`,
		},
		{
			name: "metacharacters quoted",
			args: []string{"grep", "a|b"},
			want: "grep 'a|b'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.args); got != tt.want {
				t.Fatalf("Quote(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestExitCodeNil(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Fatalf("ExitCode(nil) = %d, want 0", got)
	}
}

func TestExitCodePlainError(t *testing.T) {
	if got := ExitCode(errors.New("boom")); got != 1 {
		t.Fatalf("ExitCode = %d, want 1", got)
	}
}

func TestRunFailureCarriesExitCode(t *testing.T) {
	err := Run(context.Background(), "sh", "-c", "exit 7")
	if err == nil {
		t.Fatal("Run succeeded, want failure")
	}
	if got := ExitCode(err); got != 7 {
		t.Fatalf("ExitCode = %d, want 7", got)
	}
}

func TestOutputTrimsTrailingWhitespace(t *testing.T) {
	out, err := Output(context.Background(), "sh", "-c", "printf 'x86_64\n'")
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if out != "x86_64" {
		t.Fatalf("Output = %q, want x86_64", out)
	}
}

func TestOutputMissingCommand(t *testing.T) {
	_, err := Output(context.Background(), "definitely-not-a-command-xyz")
	if err == nil {
		t.Fatal("Output succeeded for missing command")
	}
	if got := ExitCode(err); got != 1 {
		t.Fatalf("ExitCode = %d, want 1 for missing command", got)
	}
}
