// Package eval runs a model prediction against a SWE-bench task instance.
//
// An evaluation selects a task instance from the dataset, matches it with
// the model's predicted patch, and drives a testbed container through the
// patch protocol: apply the prediction, fall back to a minimal rewrite of
// the patch when the original does not apply, revert, re-apply alongside the
// test patch, and run the instance's test command under a timeout.
//
// Every step is recorded in a per-instance log file with the same marker
// lines the reporting tooling greps for (applied patch, patch apply failed,
// tests passed, tests failed, tests timed out). The testbed container is
// always removed when the evaluation finishes.
package eval
