package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/agentfile-dev/agentfile/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys recognized in the config file and environment.
// Environment form replaces dots with underscores, e.g. AGENTFILE_DEFAULTS_BUILD.
const (
	KeyName     = "defaults.name"
	KeyBuild    = "defaults.build"
	KeyTest     = "defaults.test"
	KeyOnExists = "defaults.on_exists"
)

// Dir returns the path to the config directory (~/.agentfile/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.agentfile/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// Safe to call more than once; each call starts from a clean state.
func Load() {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Override returns the configured value for key, or fallback if unset.
func Override(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}
