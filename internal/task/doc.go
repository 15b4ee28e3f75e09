// Package task loads SWE-bench task instances and model predictions.
//
// A task instance describes one evaluation target: the repository, the gold
// patch, the test patch, and the test command. Instances are distributed as
// JSON (array or object keyed by instance id) or JSONL. Predictions are
// JSONL, one model patch per line.
//
// The package also derives golden prediction files from a task dataset and
// produces minimal variants of model patches for the retry path during
// evaluation.
package task
