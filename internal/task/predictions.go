package task

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// A model's proposed patch for a task instance.
type Prediction struct {
	ModelNameOrPath string `json:"model_name_or_path"` // Model that produced the patch.
	InstanceID      string `json:"instance_id"`        // Instance the patch targets.
	ModelPatch      string `json:"model_patch"`        // Unified diff proposed by the model.
}

// Loads predictions from a JSONL file, one prediction per line.
//
// A JSON array is also accepted for convenience. Blank lines are skipped.
func LoadPredictions(path string) ([]Prediction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading predictions")
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var predictions []Prediction
		if err := json.Unmarshal(trimmed, &predictions); err != nil {
			return nil, errors.Wrapf(err, "decoding predictions %s", path)
		}
		return predictions, nil
	}

	var predictions []Prediction

	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var p Prediction
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, errors.Wrapf(err, "decoding predictions %s", path)
		}
		predictions = append(predictions, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading predictions %s", path)
	}

	return predictions, nil
}

// Finds the prediction for an instance id.
//
// The first matching prediction wins when a file contains duplicates.
func Match(predictions []Prediction, instanceID string) (Prediction, error) {
	for _, p := range predictions {
		if p.InstanceID == instanceID {
			return p, nil
		}
	}
	return Prediction{}, errors.Wrapf(ErrPredictionNotFound, "%q", instanceID)
}
