// Package template owns the embedded instruction template: placeholder
// substitution, section-aware merging into existing files, and template
// revision tracking.
//
// Placeholders use the {{TOKEN}} form. They are a fixed external contract
// shared with the template asset, not Go template syntax, so substitution is
// a plain token-to-value mapping.
package template

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/agentfile-dev/agentfile/internal/profile"
)

//go:embed assets/CLAUDE.md.tmpl
var asset string

// Placeholder tokens recognized in the template.
const (
	TokenProjectName  = "{{PROJECT_NAME}}"
	TokenBuildCommand = "{{BUILD_COMMAND}}"
	TokenTestCommand  = "{{TEST_COMMAND}}"
)

var tokenPattern = regexp.MustCompile(`\{\{[A-Z_]+\}\}`)

// Asset returns the embedded instruction template.
func Asset() string { return asset }

// Render substitutes every placeholder token with the corresponding profile
// field. It fails if a required value is empty or if any token survives
// substitution.
func Render(tmpl string, p profile.Profile) (string, error) {
	values := map[string]string{
		TokenProjectName:  p.Name,
		TokenBuildCommand: p.BuildCommand,
		TokenTestCommand:  p.TestCommand,
	}

	out := tmpl
	for token, value := range values {
		if value == "" {
			return "", fmt.Errorf("no value bound for placeholder %s", token)
		}
		out = strings.ReplaceAll(out, token, value)
	}

	if leftover := tokenPattern.FindString(out); leftover != "" {
		return "", fmt.Errorf("unresolved placeholder %s in template", leftover)
	}
	return out, nil
}
