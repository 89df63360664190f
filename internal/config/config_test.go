package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOverrideUnset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	Load()

	if got := Override(KeyBuild, "make"); got != "make" {
		t.Errorf("Override = %q, want fallback %q", got, "make")
	}
}

func TestOverrideFromConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".agentfile")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	cfg := "defaults:\n  build: bazel build //...\n  on_exists: merge\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	Load()

	if got := Override(KeyBuild, "make"); got != "bazel build //..." {
		t.Errorf("Override = %q, want config value", got)
	}
	if got := Get(KeyOnExists); got != "merge" {
		t.Errorf("Get(on_exists) = %q, want merge", got)
	}
	if got := Override(KeyTest, "make test"); got != "make test" {
		t.Errorf("Override = %q, want fallback for unset key", got)
	}
}

func TestEnvironmentWinsOverConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".agentfile")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("defaults:\n  test: pytest\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AGENTFILE_DEFAULTS_TEST", "pytest -x")

	Load()

	if got := Override(KeyTest, "make test"); got != "pytest -x" {
		t.Errorf("Override = %q, want env value", got)
	}
}

func TestFilePath(t *testing.T) {
	t.Setenv("HOME", "/home/dev")

	got := FilePath()
	if !strings.HasSuffix(got, filepath.Join(".agentfile", "config.yaml")) {
		t.Errorf("FilePath = %q, want .agentfile/config.yaml suffix", got)
	}
}
