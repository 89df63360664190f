package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// revisionPattern matches the template revision marker, e.g.
// "<!-- agentfile:template v1.2.0 -->".
var revisionPattern = regexp.MustCompile(`<!--\s*agentfile:template\s+v?([0-9]+\.[0-9]+\.[0-9]+[^\s]*)\s*-->`)

// Revision returns the template revision recorded in doc, or false if the
// document carries no marker.
func Revision(doc string) (string, bool) {
	m := revisionPattern.FindStringSubmatch(doc)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsNewer reports whether revision a is strictly newer than b. A leading "v"
// is tolerated on either side.
func IsNewer(a, b string) (bool, error) {
	av, err := parseSemver(a)
	if err != nil {
		return false, fmt.Errorf("parsing revision %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return false, fmt.Errorf("parsing revision %q: %w", b, err)
	}
	return av.GreaterThan(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
