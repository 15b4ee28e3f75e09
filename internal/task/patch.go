package task

import (
	"fmt"
	"regexp"
	"strings"
)

// Matches a unified diff hunk header, capturing the start lines and the
// optional section heading after the second "@@".
var hunkHeader = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@(.*)$`)

// Produces a minimal variant of a unified diff.
//
// Model-generated patches often carry malformed hunk length counts, which
// make "git apply" reject an otherwise valid diff. The minimal variant keeps
// the file headers and hunk bodies but recomputes every hunk header's length
// fields from the actual body lines. Lines outside any recognized diff
// structure are dropped.
func MinimalPatch(patch string) string {
	var out strings.Builder

	lines := strings.Split(patch, "\n")
	i := 0

	for i < len(lines) {
		line := lines[i]

		switch {
		case strings.HasPrefix(line, "diff --git "),
			strings.HasPrefix(line, "index "),
			strings.HasPrefix(line, "--- "),
			strings.HasPrefix(line, "+++ "),
			strings.HasPrefix(line, "new file mode "),
			strings.HasPrefix(line, "deleted file mode "):
			out.WriteString(line)
			out.WriteByte('\n')
			i++

		case hunkHeader.MatchString(line):
			i = writeHunk(&out, lines, i)

		default:
			i++
		}
	}

	return out.String()
}

// Writes one hunk with a recomputed header and returns the index of the
// first line after the hunk body.
func writeHunk(out *strings.Builder, lines []string, start int) int {
	m := hunkHeader.FindStringSubmatch(lines[start])
	preStart, postStart, heading := m[1], m[2], m[3]

	body, next := hunkBody(lines, start+1)

	var pre, post int
	for _, l := range body {
		switch {
		case strings.HasPrefix(l, `\`): // "\ No newline at end of file"
		case strings.HasPrefix(l, "-"):
			pre++
		case strings.HasPrefix(l, "+"):
			post++
		default:
			pre++
			post++
		}
	}

	fmt.Fprintf(out, "@@ -%s,%d +%s,%d @@%s\n", preStart, pre, postStart, post, heading)
	for _, l := range body {
		out.WriteString(l)
		out.WriteByte('\n')
	}

	return next
}

// Collects the body lines of a hunk starting at index i.
//
// A hunk body consists of context (" "), removal ("-"), addition ("+"), and
// "\ No newline" lines; anything else terminates the hunk. Backslash marker
// lines are kept verbatim but do not count toward either length.
func hunkBody(lines []string, i int) (body []string, next int) {
	for ; i < len(lines); i++ {
		line := lines[i]
		if line == "" && i == len(lines)-1 {
			break // trailing newline artifact
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "-") ||
			strings.HasPrefix(line, "+") || strings.HasPrefix(line, `\`) || line == "" {
			if strings.HasPrefix(line, `\`) {
				body = append(body, line)
				continue
			}
			if line == "" {
				line = " "
			}
			body = append(body, line)
			continue
		}
		break
	}
	return body, i
}
