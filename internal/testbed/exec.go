package testbed

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/pkg/errors"
)

// Output of a command execution inside a testbed container.
type ExecResult struct {
	ExitCode int    // Exit code of the process.
	Output   string // Combined stdout and stderr, in stream order.
}

// Runs a command and arguments directly inside the container.
//
// The command runs without shell wrapping. A non-zero exit code is not
// treated as an error; the caller decides.
func (tb *Testbed) Exec(ctx context.Context, args ...string) (*ExecResult, error) {
	return tb.exec(ctx, args, nil)
}

// Runs a command string through the container's shell.
//
// The command is passed as a single argument via "/bin/sh -c". A positive
// timeout bounds the execution; expiry is returned as [ErrTimeout]. A
// non-zero exit code is not treated as an error; the caller decides.
func (tb *Testbed) ExecShell(ctx context.Context, command string, timeout time.Duration) (*ExecResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := tb.exec(ctx, []string{"/bin/sh", "-c", command}, nil)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return nil, errors.Wrapf(ErrTimeout, "after %s", timeout)
	}
	return result, err
}

// Starts an exec process in the running container, waits for it to exit, and
// returns the exit code with captured output.
//
// Stdout and stderr are demultiplexed from the attach stream into a single
// buffer so the output reads in the order the process produced it. The exit
// code is read back from the engine once the stream closes.
func (tb *Testbed) exec(ctx context.Context, args []string, env []string) (*ExecResult, error) {
	slog.Debug("exec", "testbed", tb.name, "command", args)

	created, err := tb.cli.ContainerExecCreate(ctx, tb.id, types.ExecConfig{
		Cmd:          args,
		Env:          env,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating exec")
	}

	attach, err := tb.cli.ContainerExecAttach(ctx, created.ID, types.ExecStartCheck{})
	if err != nil {
		return nil, errors.Wrap(err, "attaching to exec")
	}
	defer attach.Close()

	// The hijacked attach stream is not context-aware: the engine client
	// uses the context only to dial. Close the stream when the context
	// expires so the copy below unblocks.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			attach.Close()
		case <-watchDone:
		}
	}()

	var output bytes.Buffer
	if _, err := stdcopy.StdCopy(&output, &output, attach.Reader); err != nil && err != io.EOF {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrap(ctxErr, "exec interrupted")
		}
		return nil, errors.Wrap(err, "reading exec output")
	}

	inspect, err := tb.cli.ContainerExecInspect(ctx, created.ID)
	if err != nil {
		return nil, errors.Wrap(err, "inspecting exec")
	}

	return &ExecResult{
		ExitCode: inspect.ExitCode,
		Output:   output.String(),
	}, nil
}
