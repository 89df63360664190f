// Package detect derives a project profile from the filesystem.
//
// Project types are recognized by probing for marker files (Cargo.toml,
// package.json, go.mod, ...) against a declarative rules table embedded in
// the binary. Rules are evaluated in priority order; the first rule with a
// present marker wins, and a generic make-based fallback covers everything
// else. The package also guesses a default project name from the README
// heading, the git origin remote, or the directory name.
package detect
