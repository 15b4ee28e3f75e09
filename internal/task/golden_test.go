package task

import (
	"path/filepath"
	"testing"
)

func TestWriteGolden(t *testing.T) {
	instances := map[string]Instance{
		"b-2": {InstanceID: "b-2", Patch: "patch-b"},
		"a-1": {InstanceID: "a-1", Patch: "patch-a"},
	}

	dir := t.TempDir()
	path, err := WriteGolden(instances, dir, "SWE-bench_Lite")
	if err != nil {
		t.Fatalf("WriteGolden failed: %v", err)
	}

	want := filepath.Join(dir, "SWE-bench_Lite_golden_predictions.jsonl")
	if path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}

	predictions, err := LoadPredictions(path)
	if err != nil {
		t.Fatalf("LoadPredictions failed: %v", err)
	}
	if len(predictions) != 2 {
		t.Fatalf("len = %d, want 2", len(predictions))
	}

	// Sorted by instance id.
	if predictions[0].InstanceID != "a-1" || predictions[1].InstanceID != "b-2" {
		t.Fatalf("order = %q, %q", predictions[0].InstanceID, predictions[1].InstanceID)
	}
	if predictions[0].ModelNameOrPath != "SWE-bench_Lite_golden" {
		t.Fatalf("model = %q", predictions[0].ModelNameOrPath)
	}
	if predictions[1].ModelPatch != "patch-b" {
		t.Fatalf("patch = %q, want patch-b", predictions[1].ModelPatch)
	}
}

func TestWriteGoldenOverwrites(t *testing.T) {
	dir := t.TempDir()

	if _, err := WriteGolden(map[string]Instance{"a-1": {Patch: "v1"}}, dir, "bench"); err != nil {
		t.Fatalf("first WriteGolden failed: %v", err)
	}
	path, err := WriteGolden(map[string]Instance{"a-1": {Patch: "v2"}}, dir, "bench")
	if err != nil {
		t.Fatalf("second WriteGolden failed: %v", err)
	}

	predictions, err := LoadPredictions(path)
	if err != nil {
		t.Fatalf("LoadPredictions failed: %v", err)
	}
	if len(predictions) != 1 || predictions[0].ModelPatch != "v2" {
		t.Fatalf("predictions = %+v, want single v2 entry", predictions)
	}
}
