package eval

import (
	"context"
	"fmt"
	"time"

	"github.com/opendevin/swebench/internal/task"
	"github.com/opendevin/swebench/internal/testbed"
	"github.com/pkg/errors"
)

// Default bound on a single test command run.
const DefaultTimeout = 900 * time.Second

var (
	ErrNoTestCmd = errors.New("instance has no test command")
)

// Controls a single instance evaluation.
type Options struct {
	InstanceID      string        // Task instance to evaluate.
	Testbed         string        // Testbed image and container name.
	TasksPath       string        // Task dataset file.
	PredictionsPath string        // Model predictions file (JSONL).
	LogDir          string        // Directory for the instance log file.
	Timeout         time.Duration // Bound on the test command run. Zero uses [DefaultTimeout].
	LogSuffix       string        // Optional log file name suffix for repeated runs.
	TestCmd         string        // Overrides the instance's test command when set.
}

// Outcome of an instance evaluation.
//
// A prediction that fails to apply is a completed evaluation, not an error:
// the log file records the failure and Applied stays false.
type Result struct {
	LogFile  string // Path of the instance log file.
	Applied  bool   // Whether the prediction patch was applied.
	TestsRan bool   // Whether the test command ran to completion.
}

// Holds shared state while evaluating one instance.
type evaluation struct {
	tb      *testbed.Testbed
	log     *instanceLog
	inst    task.Instance
	timeout time.Duration
}

// Evaluates a model prediction against a task instance.
//
// The instance and its prediction are loaded from the given files, a testbed
// container is started, and the patch protocol runs inside it: try the
// prediction, retry with a minimal rewrite when it does not apply, revert,
// re-apply for real, apply the test patch, then run the test command. The
// container is removed when the evaluation finishes, regardless of outcome.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	inst, err := task.LoadInstance(opts.TasksPath, opts.InstanceID)
	if err != nil {
		return nil, err
	}
	if opts.TestCmd != "" {
		inst.TestCmd = opts.TestCmd
	}
	if inst.TestCmd == "" {
		return nil, errors.Wrapf(ErrNoTestCmd, "%q", opts.InstanceID)
	}

	predictions, err := task.LoadPredictions(opts.PredictionsPath)
	if err != nil {
		return nil, err
	}
	prediction, err := task.Match(predictions, opts.InstanceID)
	if err != nil {
		return nil, err
	}

	log, err := newInstanceLog(opts.LogDir, opts.Testbed, opts.InstanceID, prediction.ModelNameOrPath, opts.LogSuffix)
	if err != nil {
		return nil, err
	}
	defer log.Close()

	log.Printf("Task Metadata:")
	log.Printf("- Instance ID: %s", inst.InstanceID)
	log.Printf("- Testbed: %s", opts.Testbed)
	log.Printf("- Evaluation Model: %s", prediction.ModelNameOrPath)

	tb, err := testbed.New(opts.Testbed)
	if err != nil {
		return nil, err
	}
	defer tb.Close()

	if err := tb.Start(ctx); err != nil {
		return nil, err
	}
	defer tb.Reset(context.WithoutCancel(ctx))
	log.Printf("Container started: %s", opts.Testbed)

	e := &evaluation{tb: tb, log: log, inst: inst, timeout: opts.Timeout}
	result := &Result{LogFile: log.path}

	// Try the prediction; fall back to a minimal rewrite when the model's
	// patch has malformed hunk headers.
	patch := prediction.ModelPatch
	patchType := patchPredTry

	if !e.applyPatch(ctx, patch, patchType, false) {
		if patch == "" {
			return result, nil
		}
		patch = task.MinimalPatch(patch)
		patchType = patchPredMinimalTry
		if !e.applyPatch(ctx, patch, patchType, false) {
			return result, nil
		}
	}
	e.applyPatch(ctx, patch, patchType, true)

	finalType := patchPred
	if patchType == patchPredMinimalTry {
		finalType = patchPredMinimal
	}

	if !e.applyPatch(ctx, patch, finalType, false) {
		return result, nil
	}
	result.Applied = true

	if !e.applyPatch(ctx, inst.TestPatch, patchTest, false) {
		return result, nil
	}

	result.TestsRan = e.runTests(ctx)
	return result, nil
}

// Applies (or reverts) a patch inside the testbed container.
//
// The patch text is written to a temporary file in the container, applied
// with "git apply -v" (plus -R for reverts), and the temporary file is
// removed. Success and failure are recorded in the instance log with the
// marker lines; a failed application returns false rather than an error.
func (e *evaluation) applyPatch(ctx context.Context, patch, patchType string, revert bool) bool {
	verb := "Apply"
	if revert {
		verb = "Revert"
	}

	if patch == "" {
		e.log.Printf("Patch is empty (%s)", patchType)
		e.log.Raw(fmt.Sprintf("%s; prediction patch is empty", applyPatchFail))
		return false
	}

	patchPath := fmt.Sprintf("/tmp/temp_%s_%s.patch", e.inst.InstanceID, patchType)

	if err := e.tb.WriteFile(ctx, patchPath, []byte(patch)); err != nil {
		e.log.Printf("Failed to write patch file: %v", err)
		return false
	}
	defer e.tb.RemoveFile(ctx, patchPath)

	args := []string{"git", "apply", "-v"}
	if revert {
		args = append(args, "-R")
	}
	args = append(args, patchPath)

	result, err := e.tb.Exec(ctx, args...)
	if err != nil {
		e.log.Printf("%s patch failed (%s): %v", verb, patchType, err)
		return false
	}

	if result.ExitCode != 0 {
		e.log.Printf("%s patch failed (%s)", verb, patchType)
		e.log.Raw(fmt.Sprintf("%s; (%s)\nOutput:", applyPatchFail, patchType))
		e.log.Raw(result.Output)
		return false
	}

	e.log.Printf("%s patch successful (%s)", verb, patchType)
	e.log.Raw(fmt.Sprintf("%s (%s)", applyPatchPass, patchType))
	return true
}

// Runs the instance's test command inside the testbed container.
//
// The command runs through the container's shell under the evaluation
// timeout. The pass/fail marker reflects the command's exit code; the return
// value reports only whether the command ran to completion.
func (e *evaluation) runTests(ctx context.Context) bool {
	e.log.Raw(fmt.Sprintf("Test Script: %s;", e.inst.TestCmd))

	result, err := e.tb.ExecShell(ctx, e.inst.TestCmd, e.timeout)
	if err != nil {
		if errors.Is(err, testbed.ErrTimeout) {
			e.log.Printf("Test script run timed out")
			e.log.Raw(fmt.Sprintf("%s after %s", testsTimeout, e.timeout))
			return false
		}
		e.log.Printf("Test script run failed")
		e.log.Raw(fmt.Sprintf("%s: %v", testsErrored, err))
		return false
	}

	e.log.Raw(result.Output)

	if result.ExitCode != 0 {
		e.log.Raw(testsFailed)
	} else {
		e.log.Raw(testsPassed)
	}

	e.log.Printf("Test script run successful")
	return true
}
