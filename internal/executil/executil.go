package executil

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Runs a command with stdout and stderr inherited from the harness process.
//
// The subprocess sees the harness's environment unchanged. A non-zero exit
// is returned as an error wrapping the underlying [exec.ExitError], so the
// exit code remains recoverable via [ExitCode].
func Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	slog.Debug("running command", "command", Quote(append([]string{name}, args...)))

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "%s failed", name)
	}
	return nil
}

// Runs a command and returns its combined output.
//
// Trailing whitespace is trimmed from the output, matching shell command
// substitution. A non-zero exit is returned as an error with the exit code
// recoverable via [ExitCode].
func Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrapf(err, "%s failed", name)
	}
	return strings.TrimRight(string(out), " \t\r\n"), nil
}

// Returns the exit code carried by an error chain.
//
// A nil error maps to 0. An [exec.ExitError] anywhere in the chain yields the
// subprocess's exit code. Any other error maps to 1, the conventional failure
// status for errors that have no subprocess behind them.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

// Returns a printable, shell-safe representation of an argument vector.
//
// Arguments containing whitespace or shell metacharacters are single-quoted.
// The result is for logging only; it is never passed back to a shell.
func Quote(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
