package template

import (
	"strings"
)

// StandardSections lists the workflow headings the merge operation manages.
// Everything outside these sections is user-authored and never touched.
var StandardSections = []string{
	"## Workflow: Plan → Grind",
	"### Plan (default)",
	"### Grind (on approval)",
	"### Fullgate",
	"### Claiming Work (GitHub)",
	"### Teams",
}

// MergeResult reports what a merge changed.
type MergeResult struct {
	Text  string   // merged document
	Added []string // headings of the sections that were appended
}

// Merge appends the standard sections missing from existing, taking their
// bodies from rendered. Sections already present are left alone, so each
// standard section appears exactly once afterwards. User-authored content is
// preserved verbatim.
func Merge(existing, rendered string) MergeResult {
	result := MergeResult{Text: existing}

	for _, heading := range StandardSections {
		// Check against the accumulating result: appending a parent section
		// brings its subsections along, and they must not be added twice.
		if containsHeading(result.Text, heading) {
			continue
		}
		section := extractSection(rendered, heading)
		if section == "" {
			continue
		}
		if !strings.HasSuffix(result.Text, "\n") {
			result.Text += "\n"
		}
		result.Text += "\n" + section
		result.Added = append(result.Added, heading)
	}

	return result
}

// containsHeading reports whether doc has the heading on a line of its own.
func containsHeading(doc, heading string) bool {
	for _, line := range strings.Split(doc, "\n") {
		if strings.TrimRight(line, " \t") == heading {
			return true
		}
	}
	return false
}

// extractSection returns the block starting at heading up to (but not
// including) the next heading of the same or a higher level, trailing
// whitespace trimmed plus a final newline. Empty if the heading is absent.
func extractSection(doc, heading string) string {
	lines := strings.Split(doc, "\n")
	level := headingLevel(heading)

	start := -1
	for i, line := range lines {
		if strings.TrimRight(line, " \t") == heading {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if l := headingLevel(lines[i]); l > 0 && l <= level {
			end = i
			break
		}
	}

	return strings.TrimRight(strings.Join(lines[start:end], "\n"), "\n") + "\n"
}

// headingLevel returns the markdown heading level of line, or 0 if the line
// is not a heading.
func headingLevel(line string) int {
	trimmed := strings.TrimLeft(line, "#")
	n := len(line) - len(trimmed)
	if n == 0 || !strings.HasPrefix(trimmed, " ") {
		return 0
	}
	return n
}
