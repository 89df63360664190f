package detect

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestTypeByMarker(t *testing.T) {
	cases := []struct {
		marker    string
		wantType  string
		wantBuild string
		wantTest  string
	}{
		{"CMakeLists.txt", "cpp", "cmake --build build", "ctest --test-dir build"},
		{"Cargo.toml", "rust", "cargo build", "cargo test"},
		{"pyproject.toml", "python", "pip install -e .", "pytest"},
		{"setup.py", "python", "pip install -e .", "pytest"},
		{"package.json", "node", "npm run build", "npm test"},
		{"go.mod", "go", "go build ./...", "go test ./..."},
		{"pom.xml", "java", "mvn package", "mvn test"},
		{"build.gradle", "java", "./gradlew build", "./gradlew test"},
		{"build.gradle.kts", "java", "./gradlew build", "./gradlew test"},
	}

	for _, tc := range cases {
		t.Run(tc.marker, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, tc.marker)

			got, err := Type(dir)
			if err != nil {
				t.Fatalf("Type() error: %v", err)
			}
			if got.Type != tc.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tc.wantType)
			}
			if got.Build != tc.wantBuild {
				t.Errorf("Build = %q, want %q", got.Build, tc.wantBuild)
			}
			if got.Test != tc.wantTest {
				t.Errorf("Test = %q, want %q", got.Test, tc.wantTest)
			}
			if got.Marker != tc.marker {
				t.Errorf("Marker = %q, want %q", got.Marker, tc.marker)
			}
			if !got.Matched() {
				t.Error("Matched() = false, want true")
			}
		})
	}
}

func TestTypeFallback(t *testing.T) {
	dir := t.TempDir()

	got, err := Type(dir)
	if err != nil {
		t.Fatalf("Type() error: %v", err)
	}
	if got.Type != "generic" {
		t.Errorf("Type = %q, want %q", got.Type, "generic")
	}
	if got.Build != "make" || got.Test != "make test" {
		t.Errorf("commands = %q/%q, want make/make test", got.Build, got.Test)
	}
	if got.Matched() {
		t.Error("Matched() = true for fallback, want false")
	}
}

func TestTypePriorityOrder(t *testing.T) {
	// CMake outranks Node when both markers are present.
	dir := t.TempDir()
	touch(t, dir, "package.json")
	touch(t, dir, "CMakeLists.txt")

	got, err := Type(dir)
	if err != nil {
		t.Fatalf("Type() error: %v", err)
	}
	if got.Type != "cpp" {
		t.Errorf("Type = %q, want cpp (priority order)", got.Type)
	}
}

func TestRulesTableValid(t *testing.T) {
	table, err := Rules()
	if err != nil {
		t.Fatalf("Rules() error: %v", err)
	}
	if len(table.Rules) == 0 {
		t.Fatal("rules table is empty")
	}
	if table.Fallback.Type != "generic" {
		t.Errorf("fallback type = %q, want generic", table.Fallback.Type)
	}
}

func TestValidateRulesRejectsBadTable(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing fallback", "rules:\n  - {type: go, markers: [go.mod], build: b, test: t}\n"},
		{"empty markers", "rules:\n  - {type: go, markers: [], build: b, test: t}\nfallback: {type: generic, build: make, test: make test}\n"},
		{"missing build", "rules:\n  - {type: go, markers: [go.mod], test: t}\nfallback: {type: generic, build: make, test: make test}\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateRules([]byte(tc.yaml)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
