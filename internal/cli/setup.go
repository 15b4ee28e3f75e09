package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/opendevin/swebench/internal/image"
)

// Image reference the SWE-bench evaluation image is tagged with.
const setupImageTag = "opendevin/swe-bench:latest"

// Dockerfile the setup build uses, relative to the working directory.
const setupDockerfile = "docker/Dockerfile"

// Swapped out in tests.
var (
	hostArch   = image.HostArch
	buildImage = image.Build
)

// Represents the 'swebench setup' command.
//
// The command takes no flags; its behavior is fixed apart from the host
// architecture, which is queried at run time.
type SetupCmd struct{}

// Executes the setup command.
func (c *SetupCmd) Run(ctx context.Context) error {
	return c.run(ctx, os.Stdout)
}

// Builds the SWE-bench Docker image from the working directory with
// TARGETARCH set to the host architecture. Any failing step aborts the
// command immediately, and the build subprocess's exit code becomes the
// process exit code. The completion message is only printed after a
// successful build.
func (c *SetupCmd) run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "Setting up SWE-bench Docker image...")

	arch, err := hostArch(ctx)
	if err != nil {
		return err
	}

	err = buildImage(ctx, image.Options{
		Tag:        setupImageTag,
		Dockerfile: setupDockerfile,
		Context:    ".",
		BuildArgs:  [][2]string{{"TARGETARCH", arch}},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Done with setup!")
	return nil
}
