package testbed

import (
	"context"
	"log/slog"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	"github.com/pkg/errors"
)

// A task environment container backed by the Docker Engine.
//
// The testbed name doubles as both the image reference and the container
// name, matching how SWE-bench testbed images are tagged.
type Testbed struct {
	cli  *client.Client // Docker Engine API client.
	name string         // Testbed name, used as image reference and container name.
	id   string         // Running container ID, set by Start.
}

// Creates a testbed handle connected to the local Docker Engine.
//
// The client honors the standard DOCKER_HOST family of environment variables
// and negotiates the API version with the daemon. No container is created
// until [Testbed.Start] is called. The handle must be closed when no longer
// needed.
func New(name string) (*Testbed, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, errors.Wrap(err, "creating docker client")
	}
	return &Testbed{cli: cli, name: name}, nil
}

// Closes the Docker client connection.
func (tb *Testbed) Close() error {
	return tb.cli.Close()
}

// Returns the testbed name.
func (tb *Testbed) Name() string {
	return tb.name
}

// Starts the task environment container.
//
// Any stale container with the testbed name is force-removed first, so a
// crashed previous run never blocks a new one. The container is created from
// the image of the same name with a TTY, which keeps its default command
// alive so subsequent Exec calls have a running container to attach to.
func (tb *Testbed) Start(ctx context.Context) error {
	tb.removeStale(ctx)

	created, err := tb.cli.ContainerCreate(ctx,
		&container.Config{
			Image: tb.name,
			Tty:   true,
		},
		&container.HostConfig{},
		nil, nil, tb.name,
	)
	if err != nil {
		return errors.Wrapf(err, "creating container %s", tb.name)
	}

	if err := tb.cli.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		tb.cli.ContainerRemove(ctx, created.ID, container.RemoveOptions{Force: true})
		return errors.Wrapf(err, "starting container %s", tb.name)
	}

	tb.id = created.ID
	slog.Debug("container started", "testbed", tb.name, "id", created.ID)

	return nil
}

// Removes the task environment container.
//
// The container is killed and deleted in one call. Reset is safe to call
// when no container exists; it is the exit path for every evaluation,
// successful or not.
func (tb *Testbed) Reset(ctx context.Context) {
	target := tb.id
	if target == "" {
		target = tb.name
	}

	err := tb.cli.ContainerRemove(ctx, target, container.RemoveOptions{Force: true})
	if err != nil && !errdefs.IsNotFound(err) {
		slog.Warn("failed to remove testbed container", "testbed", tb.name, "error", err)
		return
	}

	tb.id = ""
}

// Removes any container left behind by a previous run with the same name.
func (tb *Testbed) removeStale(ctx context.Context) {
	err := tb.cli.ContainerRemove(ctx, tb.name, container.RemoveOptions{Force: true})
	if err == nil {
		slog.Debug("removed stale container", "testbed", tb.name)
	}
}
