package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/opendevin/swebench/internal/eval"
	"github.com/opendevin/swebench/internal/paths"
)

// Represents the 'swebench eval' command.
type EvalCmd struct {
	Instance    string        `arg:"" help:"Task instance id to evaluate."`
	Testbed     string        `required:"" short:"t" env:"SWEBENCH_TESTBED" help:"Testbed image and container name."`
	Tasks       string        `required:"" env:"SWEBENCH_TASKS" help:"Task dataset file (JSON or JSONL)." type:"existingfile"`
	Predictions string        `required:"" short:"p" env:"SWEBENCH_PREDICTIONS" help:"Model predictions file (JSONL)." type:"existingfile"`
	LogDir      string        `env:"SWEBENCH_LOG_DIR" help:"Directory for instance logs. Defaults to the state directory." placeholder:"DIR"`
	Timeout     time.Duration `env:"SWEBENCH_TIMEOUT" default:"900s" help:"Bound on the test command run."`
	LogSuffix   string        `help:"Log file name suffix for repeated runs."`
	TestCmd     string        `help:"Override the instance's test command."`
}

// Executes the eval command.
//
// Runs the full patch-and-test protocol for one instance inside its testbed
// container and reports where the instance log was written.
func (c *EvalCmd) Run(ctx context.Context) error {
	logDir := c.LogDir
	if logDir == "" {
		logDir = paths.LogDir()
	}

	result, err := eval.Run(ctx, eval.Options{
		InstanceID:      c.Instance,
		Testbed:         c.Testbed,
		TasksPath:       c.Tasks,
		PredictionsPath: c.Predictions,
		LogDir:          logDir,
		Timeout:         c.Timeout,
		LogSuffix:       c.LogSuffix,
		TestCmd:         c.TestCmd,
	})
	if err != nil {
		return err
	}

	slog.Info("evaluation finished",
		"instance", c.Instance,
		"applied", result.Applied,
		"tests_ran", result.TestsRan,
		"log", result.LogFile,
	)
	return nil
}
