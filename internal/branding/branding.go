// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	OutputFile  string `yaml:"output_file"`
	AliasFile   string `yaml:"alias_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "agentfile",
			DisplayName: "Agentfile",
			Description: "Bootstrap agent instruction files into a project",
			HomeDir:     ".agentfile",
			EnvPrefix:   "AGENTFILE",
			OutputFile:  "CLAUDE.md",
			AliasFile:   "AGENTS.md",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "agentfile").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".agentfile").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "AGENTFILE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// OutputFile returns the instruction file written into a project (e.g., "CLAUDE.md").
func OutputFile() string { load(); return defaults.OutputFile }

// AliasFile returns the symlink alias created next to the output file (e.g., "AGENTS.md").
func AliasFile() string { load(); return defaults.AliasFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "AGENTFILE_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
