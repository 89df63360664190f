//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // fake $HOME — holds .agentfile/config.yaml
	ProjectDir string // a mock project directory
}

// setupTestEnv creates isolated temp directories and points $HOME at a
// sandbox so runs never touch the real user config.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// writeUserConfig writes ~/.agentfile/config.yaml in the sandbox home.
func writeUserConfig(t *testing.T, env *testEnv, content string) {
	t.Helper()

	dir := filepath.Join(env.HomeDir, ".agentfile")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

// writeProjectFile drops a file into the mock project directory.
func writeProjectFile(t *testing.T, env *testEnv, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(env.ProjectDir, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

// readProjectFile reads a file from the mock project directory.
func readProjectFile(t *testing.T, env *testEnv, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(env.ProjectDir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}
