// Package image builds Docker images by invoking the docker CLI.
//
// A build is described by [Options] and executed with "docker build". The
// build subprocess inherits the harness's stdio so its progress output
// reaches the terminal directly, and a failing build surfaces the docker
// CLI's own exit code to the caller.
//
// Example usage:
//
//	arch, err := image.HostArch(ctx)
//	if err != nil {
//	    return err
//	}
//
//	err = image.Build(ctx, image.Options{
//	    Tag:        "opendevin/swe-bench:latest",
//	    Dockerfile: "docker/Dockerfile",
//	    Context:    ".",
//	    BuildArgs:  [][2]string{{"TARGETARCH", arch}},
//	})
package image
