package main

import (
	"log/slog"
	"os"

	"github.com/opendevin/swebench/internal"
	"github.com/opendevin/swebench/internal/cli"
	"github.com/opendevin/swebench/internal/executil"
)

// The entry point for the swebench harness.
//
// Initializes logging, displays startup information, and executes the root
// command. If any error occurs during execution, it exits with the failing
// subprocess's exit code when one is available, or 1 otherwise.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("swebench is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(executil.ExitCode(err))
	}
}

// Creates a logger seeded from build-time linker flags.
//
// The logger is reconfigured after flag parsing via cli.Execute.
func logger() *slog.Logger {
	internal.LogLevel.Set(logLevel())
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: internal.LogLevel,
	})
	return slog.New(handler.WithGroup(internal.Name))
}

// Returns the log level derived from build-time linker flags.
func logLevel() slog.Level {
	if internal.IsDebug() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
