package image

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/opendevin/swebench/internal/executil"
	"github.com/pkg/errors"
)

// Describes a single docker build invocation.
type Options struct {
	Tag        string      // Image reference to tag the result with (required).
	Dockerfile string      // Dockerfile path. Defaults to "Dockerfile".
	Context    string      // Build context directory. Defaults to ".".
	BuildArgs  [][2]string // Build arguments as KEY,VALUE pairs, passed in order.
	Pull       bool        // Always attempt to pull newer base images.
	NoCache    bool        // Disable the layer cache.
	DryRun     bool        // Print the command without executing it.
}

// Builds a Docker image according to the options.
//
// The docker CLI runs with inherited stdio, so build progress and diagnostics
// appear on the terminal as-is. A failing build is returned as an error that
// preserves the docker CLI's exit code. DryRun logs the command line instead
// of executing it.
func Build(ctx context.Context, opts Options) error {
	args, err := buildArgs(opts)
	if err != nil {
		return err
	}

	slog.Debug("docker build",
		"tag", opts.Tag,
		"dockerfile", opts.Dockerfile,
		"context", opts.Context,
		"command", executil.Quote(append([]string{"docker"}, args...)),
	)

	if opts.DryRun {
		fmt.Println("docker", executil.Quote(args))
		return nil
	}

	return executil.Run(ctx, "docker", args...)
}

// Assembles the docker CLI argument vector for a build.
//
// The context directory is always the final argument. Build arguments are
// emitted in declaration order so invocations are reproducible.
func buildArgs(opts Options) ([]string, error) {
	if err := validateTag(opts.Tag); err != nil {
		return nil, err
	}

	dockerfile := opts.Dockerfile
	if dockerfile == "" {
		dockerfile = "Dockerfile"
	}

	buildCtx := opts.Context
	if buildCtx == "" {
		buildCtx = "."
	}

	args := []string{"build", "-t", opts.Tag, "-f", dockerfile}

	if opts.Pull {
		args = append(args, "--pull")
	}
	if opts.NoCache {
		args = append(args, "--no-cache")
	}

	for _, kv := range opts.BuildArgs {
		if kv[0] == "" {
			continue
		}
		args = append(args, "--build-arg", kv[0]+"="+kv[1])
	}

	return append(args, buildCtx), nil
}

// Validates an image reference.
//
// Docker references must be lowercase and contain no whitespace. Anything
// else is rejected before the CLI is invoked so the error names the bad
// reference instead of surfacing a docker parse failure.
func validateTag(tag string) error {
	if tag == "" {
		return errors.Wrap(ErrInvalidOptions, "tag is required")
	}
	if strings.ToLower(tag) != tag || strings.ContainsAny(tag, " \t\n") {
		return errors.Wrapf(ErrInvalidOptions, "invalid tag %q (must be lowercase, no whitespace)", tag)
	}
	return nil
}
