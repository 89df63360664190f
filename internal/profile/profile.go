// Package profile holds the resolved values used to render the instruction
// template for one run. Resolution is pure: terminal and environment I/O
// happen at the caller, which hands in defaults and any overriding answers.
package profile

// Profile is the complete set of values substituted into the template.
type Profile struct {
	Name         string
	Type         string
	BuildCommand string
	TestCommand  string
}

// Defaults are the pre-filled values offered to the user, derived from
// detection, user config, and environment.
type Defaults struct {
	Name  string
	Type  string
	Build string
	Test  string
}

// Answers carry user-supplied overrides. An empty field keeps the default.
type Answers struct {
	Name  string
	Build string
	Test  string
}

// Resolve combines defaults with answers into a final profile. Empty answers
// keep the corresponding default.
func Resolve(defaults Defaults, answers Answers) Profile {
	p := Profile{
		Name:         defaults.Name,
		Type:         defaults.Type,
		BuildCommand: defaults.Build,
		TestCommand:  defaults.Test,
	}
	if answers.Name != "" {
		p.Name = answers.Name
	}
	if answers.Build != "" {
		p.BuildCommand = answers.Build
	}
	if answers.Test != "" {
		p.TestCommand = answers.Test
	}
	return p
}
