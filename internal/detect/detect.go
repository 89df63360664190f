package detect

import (
	"os"
	"path/filepath"
)

// Result describes the outcome of a project-type probe.
type Result struct {
	Type     string
	Language string // empty for the generic fallback
	Build    string
	Test     string
	Marker   string // the marker file that matched, empty for fallback
}

// Matched reports whether a marker file identified the project, as opposed
// to the generic fallback applying.
func (r Result) Matched() bool { return r.Marker != "" }

// Type probes dir for known marker files and returns the matching rule's
// type and default commands. Rules are checked in table order; the first
// present marker wins. When nothing matches, the generic fallback applies.
func Type(dir string) (Result, error) {
	table, err := Rules()
	if err != nil {
		return Result{}, err
	}

	for _, rule := range table.Rules {
		for _, marker := range rule.Markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return Result{
					Type:     rule.Type,
					Language: rule.Language,
					Build:    rule.Build,
					Test:     rule.Test,
					Marker:   marker,
				}, nil
			}
		}
	}

	return Result{
		Type:  table.Fallback.Type,
		Build: table.Fallback.Build,
		Test:  table.Fallback.Test,
	}, nil
}
