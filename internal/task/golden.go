package task

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/opendevin/swebench/internal/paths"
	"github.com/pkg/errors"
)

// Writes a golden predictions file derived from a task dataset.
//
// Each instance's gold patch becomes a prediction attributed to the model
// "<bench>_golden". The file is written to dir as
// "<bench>_golden_predictions.jsonl", replacing any previous run's output.
// Instances are emitted in id order so the file is reproducible. Returns the
// path of the written file.
func WriteGolden(instances map[string]Instance, dir, bench string) (string, error) {
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return "", errors.Wrap(err, "creating predictions directory")
	}

	model := bench + "_golden"
	path := filepath.Join(dir, model+"_predictions.jsonl")

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "creating predictions file")
	}
	defer f.Close()

	ids := make([]string, 0, len(instances))
	for id := range instances {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	enc := json.NewEncoder(f)
	for _, id := range ids {
		p := Prediction{
			ModelNameOrPath: model,
			InstanceID:      id,
			ModelPatch:      instances[id].Patch,
		}
		if err := enc.Encode(&p); err != nil {
			return "", errors.Wrap(err, "writing prediction")
		}
	}

	return path, nil
}
