package task

import (
	"strings"
	"testing"
)

func TestMinimalPatchRecomputesCounts(t *testing.T) {
	// Hunk header claims wrong lengths; the body has 1 context, 1 removal,
	// and 2 additions.
	patch := `diff --git a/foo.py b/foo.py
--- a/foo.py
+++ b/foo.py
@@ -10,99 +10,99 @@ def foo():
 context
-old line
+new line
+extra line
`

	got := MinimalPatch(patch)

	if !strings.Contains(got, "@@ -10,2 +10,3 @@ def foo():") {
		t.Fatalf("hunk header not recomputed:\n%s", got)
	}
	if !strings.Contains(got, "-old line\n") || !strings.Contains(got, "+extra line\n") {
		t.Fatalf("hunk body lost:\n%s", got)
	}
}

func TestMinimalPatchKeepsFileHeaders(t *testing.T) {
	patch := `diff --git a/a.py b/a.py
index 1234567..89abcde 100644
--- a/a.py
+++ b/a.py
@@ -1,1 +1,1 @@
-x
+y
`

	got := MinimalPatch(patch)

	for _, header := range []string{"diff --git a/a.py b/a.py", "index 1234567..89abcde 100644", "--- a/a.py", "+++ b/a.py"} {
		if !strings.Contains(got, header+"\n") {
			t.Fatalf("missing header %q:\n%s", header, got)
		}
	}
}

func TestMinimalPatchDropsNoise(t *testing.T) {
	patch := `Some model commentary before the diff.
diff --git a/a.py b/a.py
--- a/a.py
+++ b/a.py
@@ -1,1 +1,1 @@
-x
+y
Trailing commentary after the hunk.
`

	got := MinimalPatch(patch)

	if strings.Contains(got, "commentary") {
		t.Fatalf("noise lines survived:\n%s", got)
	}
	if !strings.Contains(got, "+y\n") {
		t.Fatalf("hunk body lost:\n%s", got)
	}
}

func TestMinimalPatchMultipleHunks(t *testing.T) {
	patch := `diff --git a/a.py b/a.py
--- a/a.py
+++ b/a.py
@@ -1,9 +1,9 @@
 ctx
-a
+b
@@ -20,9 +20,9 @@
+added
`

	got := MinimalPatch(patch)

	if !strings.Contains(got, "@@ -1,2 +1,2 @@") {
		t.Fatalf("first hunk header wrong:\n%s", got)
	}
	if !strings.Contains(got, "@@ -20,0 +20,1 @@") {
		t.Fatalf("second hunk header wrong:\n%s", got)
	}
}

func TestMinimalPatchNoNewlineMarker(t *testing.T) {
	patch := `diff --git a/a.txt b/a.txt
--- a/a.txt
+++ b/a.txt
@@ -1,5 +1,5 @@
-old
+new
\ No newline at end of file
`

	got := MinimalPatch(patch)

	if !strings.Contains(got, "@@ -1,1 +1,1 @@") {
		t.Fatalf("marker counted toward lengths:\n%s", got)
	}
	if !strings.Contains(got, `\ No newline at end of file`) {
		t.Fatalf("marker dropped:\n%s", got)
	}
}

func TestMinimalPatchEmpty(t *testing.T) {
	if got := MinimalPatch(""); got != "" {
		t.Fatalf("MinimalPatch(\"\") = %q, want empty", got)
	}
}
