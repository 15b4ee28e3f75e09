// Package testbed manages SWE-bench task environment containers.
//
// A [Testbed] wraps one detached container created from a testbed image of
// the same name. Any stale container left by a previous run is removed
// before a new one starts. Commands are executed inside the container with
// captured output and exit codes, and files (patches) are copied in as tar
// streams. When the evaluation finishes the testbed is reset, force-removing
// the container.
//
// Example usage:
//
//	tb, err := testbed.New("matplotlib__matplotlib__3.5")
//	if err != nil {
//	    return err
//	}
//	defer tb.Close()
//
//	if err := tb.Start(ctx); err != nil {
//	    return err
//	}
//	defer tb.Reset(ctx)
//
//	result, err := tb.ExecShell(ctx, "pytest -rA", 15*time.Minute)
//	if err != nil {
//	    return err
//	}
package testbed
