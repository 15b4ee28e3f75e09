package task

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// A single SWE-bench task instance.
type Instance struct {
	InstanceID string `json:"instance_id"` // Unique id, e.g. "matplotlib__matplotlib-22835".
	Repo       string `json:"repo"`        // Source repository, e.g. "matplotlib/matplotlib".
	Version    string `json:"version"`     // Repository version the instance targets.
	BaseCommit string `json:"base_commit"` // Commit the testbed is checked out at.
	Patch      string `json:"patch"`       // Gold patch that resolves the issue.
	TestPatch  string `json:"test_patch"`  // Patch adding or updating the tests.
	TestCmd    string `json:"test_cmd"`    // Command that runs the instance's tests.
}

// Loads task instances from a dataset file, keyed by instance id.
//
// Three layouts are accepted: a JSON array of instances, a JSON object
// mapping instance ids to instances, and JSONL with one instance per line.
// Instances without an id are rejected.
func LoadInstances(path string) (map[string]Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading task dataset")
	}

	instances, err := decodeInstances(data)
	if err != nil {
		return nil, errors.Wrapf(ErrBadDataset, "%s: %v", path, err)
	}

	byID := make(map[string]Instance, len(instances))
	for _, inst := range instances {
		if inst.InstanceID == "" {
			return nil, errors.Wrapf(ErrBadDataset, "%s: instance without instance_id", path)
		}
		byID[inst.InstanceID] = inst
	}
	return byID, nil
}

// Looks up a single instance in a dataset file.
func LoadInstance(path, instanceID string) (Instance, error) {
	instances, err := LoadInstances(path)
	if err != nil {
		return Instance{}, err
	}

	inst, ok := instances[instanceID]
	if !ok {
		return Instance{}, errors.Wrapf(ErrInstanceNotFound, "%q in %s", instanceID, path)
	}
	return inst, nil
}

// Decodes instances from raw dataset bytes, trying the JSON array and object
// layouts before falling back to JSONL.
func decodeInstances(data []byte) ([]Instance, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, errors.New("empty dataset")
	}

	if trimmed[0] == '[' {
		var instances []Instance
		if err := json.Unmarshal(trimmed, &instances); err != nil {
			return nil, err
		}
		return instances, nil
	}

	// An object is either a single map of id to instance, or the first line
	// of a JSONL stream. Try the map first; JSONL fails that decode because
	// of trailing lines.
	var byID map[string]Instance
	if err := json.Unmarshal(trimmed, &byID); err == nil {
		instances := make([]Instance, 0, len(byID))
		for id, inst := range byID {
			if inst.InstanceID == "" {
				inst.InstanceID = id
			}
			instances = append(instances, inst)
		}
		return instances, nil
	}

	return decodeLines(trimmed)
}

// Decodes a JSONL stream of instances.
func decodeLines(data []byte) ([]Instance, error) {
	var instances []Instance

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var inst Instance
		if err := json.Unmarshal(line, &inst); err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return instances, nil
}
