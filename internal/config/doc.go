// Package config layers user-level defaults for the setup flow.
//
// Values come from ~/.agentfile/config.yaml and from AGENTFILE_* environment
// variables, with the environment winning. The config file is optional; a
// missing file never fails a run.
package config
