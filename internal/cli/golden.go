package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/opendevin/swebench/internal/paths"
	"github.com/opendevin/swebench/internal/task"
)

// Represents the 'swebench golden' command.
type GoldenCmd struct {
	Tasks  string `required:"" env:"SWEBENCH_TASKS" help:"Task dataset file (JSON or JSONL)." type:"existingfile"`
	Output string `short:"o" env:"SWEBENCH_PREDICTIONS_DIR" help:"Directory for the predictions file. Defaults to the data directory." placeholder:"DIR"`
	Bench  string `help:"Benchmark name used in the output file name. Defaults to the dataset file name."`
}

// Executes the golden command.
//
// Derives a predictions file from the gold patches in the task dataset, so
// the harness can be validated end-to-end against patches known to apply.
func (c *GoldenCmd) Run(ctx context.Context) error {
	instances, err := task.LoadInstances(c.Tasks)
	if err != nil {
		return err
	}

	bench := c.Bench
	if bench == "" {
		bench = benchName(c.Tasks)
	}

	dir := c.Output
	if dir == "" {
		dir = paths.DataDir()
	}

	path, err := task.WriteGolden(instances, dir, bench)
	if err != nil {
		return err
	}

	slog.Info("golden predictions written", "instances", len(instances), "path", path)
	return nil
}

// Derives the benchmark name from a dataset path by stripping the directory
// and file extension (e.g. "data/SWE-bench_Lite.json" becomes
// "SWE-bench_Lite").
func benchName(tasksPath string) string {
	base := filepath.Base(tasksPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
