package eval

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/opendevin/swebench/internal"
	"github.com/opendevin/swebench/internal/paths"
	"github.com/pkg/errors"
)

// Per-instance evaluation log.
//
// Messages are written to the instance's log file with a "[testbed]
// [instance]" prefix and mirrored to the process logger. Raw writes carry
// command output and marker lines into the file untouched, so downstream
// report tooling can grep for them.
type instanceLog struct {
	file   *os.File
	path   string
	prefix string
}

// Returns the log file name for an instance evaluation.
//
// The name is "<instance>.<model>.eval.log", with an optional suffix before
// the "eval" segment for distinguishing repeated runs.
func logFileName(instanceID, model, suffix string) string {
	parts := []string{instanceID, model}
	if suffix != "" {
		parts = append(parts, suffix)
	}
	parts = append(parts, "eval", "log")
	return strings.Join(parts, ".")
}

// Creates the instance log file, truncating any previous run's log.
func newInstanceLog(dir, testbedName, instanceID, model, suffix string) (*instanceLog, error) {
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return nil, errors.Wrap(err, "creating log directory")
	}

	path := filepath.Join(dir, logFileName(instanceID, model, suffix))

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating instance log")
	}

	return &instanceLog{
		file:   file,
		path:   path,
		prefix: fmt.Sprintf("[%s] [%s]", testbedName, instanceID),
	}, nil
}

// Writes a prefixed message to the log file and mirrors it to slog.
func (l *instanceLog) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.file, "%s %s\n", l.prefix, msg)
	slog.Info(msg, "instance", l.prefix)
}

// Writes raw text to the log file without a prefix.
//
// Raw lines carry command output and marker lines. By default they stay in
// the instance log; in verbose mode they are mirrored to the process logger
// so the terminal shows the full evaluation transcript.
func (l *instanceLog) Raw(text string) {
	fmt.Fprintln(l.file, text)
	if internal.IsVerbose() {
		slog.Info(text, "instance", l.prefix)
	}
}

// Closes the log file.
func (l *instanceLog) Close() error {
	return l.file.Close()
}
