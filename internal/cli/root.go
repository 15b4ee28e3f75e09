package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/opendevin/swebench/internal"
)

// Represents the root command for the swebench harness.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Setup   SetupCmd   `cmd:"" help:"Build the SWE-bench Docker image."`
	Eval    EvalCmd    `cmd:"" help:"Evaluate a model prediction against a task instance."`
	Golden  GoldenCmd  `cmd:"" help:"Write golden predictions derived from a task dataset."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Optional .env file feeds the SWEBENCH_* env fallbacks on eval flags.
	godotenv.Load()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("The SWE-bench Docker harness.\n\nBuilds the evaluation image and runs model predictions against task instances in testbed containers."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()

	if RootCmd.Verbose {
		internal.SetVerbose(true)
	}

	if debug {
		internal.LogLevel.Set(slog.LevelDebug)
	} else if quiet {
		internal.LogLevel.Set(slog.LevelWarn)
	} else {
		internal.LogLevel.Set(slog.LevelInfo)
	}
}
