package detect

import (
	"bufio"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Name guesses the project name for dir. It prefers the first top-level
// heading of README.md, then the repository name of the git origin remote,
// and falls back to the directory's base name.
func Name(dir string) string {
	if name := readmeHeading(filepath.Join(dir, "README.md")); name != "" {
		return name
	}
	if name := gitRemoteName(dir); name != "" {
		return name
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}
	return filepath.Base(abs)
}

// readmeHeading returns the text of the first "# " heading in the file,
// or empty if the file is missing or has no heading.
func readmeHeading(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// gitRemoteName returns the repository name from the origin remote URL,
// or empty if dir is not a git checkout or git is unavailable.
func gitRemoteName(dir string) string {
	if info, err := os.Stat(filepath.Join(dir, ".git")); err != nil || !info.IsDir() {
		return ""
	}

	cmd := exec.Command("git", "remote", "get-url", "origin")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}

	url := strings.TrimRight(strings.TrimSpace(string(out)), "/")
	if url == "" {
		return ""
	}
	name := url[strings.LastIndex(url, "/")+1:]
	return strings.TrimSuffix(name, ".git")
}
