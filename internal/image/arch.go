package image

import (
	"context"

	"github.com/opendevin/swebench/internal/executil"
	"github.com/pkg/errors"
)

// Queries the host's CPU architecture identifier.
//
// Shells out to "uname -m" and returns the trimmed result (e.g. "x86_64",
// "arm64", "aarch64"). The value is passed verbatim as the TARGETARCH build
// argument. A failing query is an error; no fallback is attempted, so the
// caller aborts before any build starts.
func HostArch(ctx context.Context) (string, error) {
	out, err := executil.Output(ctx, "uname", "-m")
	if err != nil {
		return "", errors.Wrap(err, "querying host architecture")
	}
	if out == "" {
		return "", errors.Wrap(ErrArchQuery, "uname -m returned no output")
	}
	return out, nil
}
