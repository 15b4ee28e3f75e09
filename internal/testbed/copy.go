package testbed

import (
	"archive/tar"
	"bytes"
	"context"
	"path"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/pkg/errors"
)

// Writes a file into the container's filesystem.
//
// The contents are wrapped in a single-entry tar stream and extracted at the
// file's parent directory, which must already exist in the container. Used
// to place patch files before "git apply".
func (tb *Testbed) WriteFile(ctx context.Context, dest string, contents []byte) error {
	var buf bytes.Buffer

	tw := tar.NewWriter(&buf)
	header := &tar.Header{
		Name:    path.Base(dest),
		Mode:    0644,
		Size:    int64(len(contents)),
		ModTime: time.Now(),
	}
	if err := tw.WriteHeader(header); err != nil {
		return errors.Wrap(err, "writing tar header")
	}
	if _, err := tw.Write(contents); err != nil {
		return errors.Wrap(err, "writing tar contents")
	}
	if err := tw.Close(); err != nil {
		return errors.Wrap(err, "closing tar stream")
	}

	destDir := path.Dir(dest)
	if destDir == "" {
		destDir = "/"
	}

	err := tb.cli.CopyToContainer(ctx, tb.id, destDir, &buf, types.CopyToContainerOptions{})
	if err != nil {
		return errors.Wrapf(err, "copying %s into container", dest)
	}
	return nil
}

// Removes a file from the container's filesystem.
//
// A failing removal is not an error worth failing an evaluation over; the
// exit code is ignored the same way the exec wrapper ignores it.
func (tb *Testbed) RemoveFile(ctx context.Context, path string) error {
	_, err := tb.Exec(ctx, "rm", "-f", path)
	return err
}
