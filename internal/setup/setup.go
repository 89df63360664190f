// Package setup orchestrates one bootstrap run: detect the project, resolve
// the profile, render the template, and write the instruction file plus its
// alias symlink.
package setup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentfile-dev/agentfile/internal/branding"
	"github.com/agentfile-dev/agentfile/internal/config"
	"github.com/agentfile-dev/agentfile/internal/detect"
	"github.com/agentfile-dev/agentfile/internal/platform"
	"github.com/agentfile-dev/agentfile/internal/profile"
	"github.com/agentfile-dev/agentfile/internal/prompt"
	"github.com/agentfile-dev/agentfile/internal/template"
)

// ErrCancelled is returned when the user aborts at the existing-file prompt.
// It is a clean exit, not a failure.
var ErrCancelled = errors.New("cancelled")

// Action describes what a run did to the output file.
type Action string

const (
	ActionCreated     Action = "created"
	ActionOverwritten Action = "overwritten"
	ActionMerged      Action = "merged"
)

// Options configures a run. In and Out default to the process streams; Dir
// defaults to the current directory. Name, Build, and Test pre-answer the
// corresponding prompts.
type Options struct {
	Dir       string
	In        io.Reader
	Out       io.Writer
	Name      string
	Build     string
	Test      string
	AssumeYes bool   // accept all defaults without prompting
	OnExists  string // overwrite|merge|cancel, pre-answers the conflict prompt
}

// Result reports what a successful run produced.
type Result struct {
	Action        Action
	Path          string
	AliasPath     string
	Profile       profile.Profile
	AddedSections []string
}

// Run executes the bootstrap flow for opts.Dir.
func Run(opts Options) (*Result, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	outPath := filepath.Join(opts.Dir, branding.OutputFile())
	p := prompt.New(opts.In, opts.Out)

	// Conflict check comes first: a cancel must happen before any questions.
	decision := prompt.Overwrite
	exists := false
	existing := ""
	if data, err := os.ReadFile(outPath); err == nil {
		exists = true
		existing = string(data)
		decision, err = resolveConflict(p, opts)
		if err != nil {
			return nil, err
		}
		if decision == prompt.Cancel {
			return nil, ErrCancelled
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", outPath, err)
	}

	prof, err := resolveProfile(p, opts)
	if err != nil {
		return nil, err
	}

	rendered, err := template.Render(template.Asset(), prof)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	warnStaleRevision(opts.Out, existing)

	result := &Result{
		Action:  ActionCreated,
		Path:    outPath,
		Profile: prof,
	}

	output := rendered
	switch {
	case exists && decision == prompt.Merge:
		merged := template.Merge(existing, rendered)
		output = merged.Text
		result.Action = ActionMerged
		result.AddedSections = merged.Added
	case exists:
		result.Action = ActionOverwritten
	}

	if err := writeAtomic(outPath, output); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}

	aliasPath, err := ensureAlias(opts.Dir, opts.Out)
	if err != nil {
		return nil, err
	}
	result.AliasPath = aliasPath

	return result, nil
}

// resolveConflict picks the decision for an existing output file: the
// --on-exists value if given, cancel under --yes (never clobber silently),
// otherwise the interactive menu.
func resolveConflict(p *prompt.Prompter, opts Options) (prompt.Decision, error) {
	if opts.OnExists != "" {
		return prompt.ParseDecision(opts.OnExists)
	}
	if opts.AssumeYes {
		return prompt.Cancel, nil
	}
	return p.AskDecision(branding.OutputFile())
}

// resolveProfile layers detection, user config, and environment into the
// prompt defaults, then collects answers (or accepts defaults under --yes).
func resolveProfile(p *prompt.Prompter, opts Options) (profile.Profile, error) {
	det, err := detect.Type(opts.Dir)
	if err != nil {
		return profile.Profile{}, err
	}
	if det.Matched() {
		fmt.Fprintf(p.Out(), "\nDetected %s project.\n", det.Language)
	}

	defaults := profile.Defaults{
		Name:  config.Override(config.KeyName, detect.Name(opts.Dir)),
		Type:  det.Type,
		Build: config.Override(config.KeyBuild, det.Build),
		Test:  config.Override(config.KeyTest, det.Test),
	}

	answers := profile.Answers{
		Name:  opts.Name,
		Build: opts.Build,
		Test:  opts.Test,
	}
	if !opts.AssumeYes {
		if answers.Name == "" {
			if answers.Name, err = p.Ask("Project name", defaults.Name); err != nil {
				return profile.Profile{}, err
			}
		}
		if answers.Build == "" {
			if answers.Build, err = p.Ask("Build command", defaults.Build); err != nil {
				return profile.Profile{}, err
			}
		}
		if answers.Test == "" {
			if answers.Test, err = p.Ask("Test command", defaults.Test); err != nil {
				return profile.Profile{}, err
			}
		}
	}

	return profile.Resolve(defaults, answers), nil
}

// warnStaleRevision prints a notice when the existing file was generated
// from a newer template revision than the one embedded in this binary.
func warnStaleRevision(w io.Writer, existing string) {
	if existing == "" {
		return
	}
	existingRev, ok := template.Revision(existing)
	if !ok {
		return
	}
	assetRev, ok := template.Revision(template.Asset())
	if !ok {
		return
	}
	if newer, err := template.IsNewer(existingRev, assetRev); err == nil && newer {
		fmt.Fprintf(w, "Note: existing file uses template v%s, newer than this binary's v%s.\n",
			existingRev, assetRev)
	}
}

// ensureAlias makes the alias symlink point at the output file. An existing
// regular file is left alone (user-owned); a symlink with a different target
// is replaced.
func ensureAlias(dir string, out io.Writer) (string, error) {
	aliasPath := filepath.Join(dir, branding.AliasFile())

	if _, err := os.Lstat(aliasPath); err == nil {
		if !platform.IsSymlink(aliasPath) {
			fmt.Fprintf(out, "%s already exists — skipping symlink.\n", branding.AliasFile())
			return aliasPath, nil
		}
		target, err := platform.ReadSymlinkTarget(aliasPath)
		if err == nil && target == branding.OutputFile() {
			return aliasPath, nil
		}
		if err := platform.RemoveSymlink(aliasPath); err != nil {
			return "", fmt.Errorf("replacing %s: %w", branding.AliasFile(), err)
		}
	}

	// Relative target keeps the link valid if the project directory moves.
	if err := platform.CreateSymlink(branding.OutputFile(), aliasPath); err != nil {
		return "", fmt.Errorf("creating %s symlink: %w", branding.AliasFile(), err)
	}
	fmt.Fprintf(out, "Created %s → %s symlink.\n", branding.AliasFile(), branding.OutputFile())
	return aliasPath, nil
}

// writeAtomic writes data to path via a temp file and rename so an
// interrupted run never leaves a partially written file.
func writeAtomic(path, data string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
