// Package cli defines the Cobra command tree for the agentfile CLI. The
// root command runs the bootstrap flow itself; each file in this package
// registers one subcommand (detect, version). Command implementations
// delegate to internal packages for business logic and only handle flag
// parsing, I/O formatting, and user interaction.
package cli
