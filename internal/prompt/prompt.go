// Package prompt implements the terminal question-and-answer layer. All
// functions read from and write to injected streams so the flow is testable
// without a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Decision is the user's choice when the output file already exists.
type Decision string

const (
	Overwrite Decision = "overwrite"
	Merge     Decision = "merge"
	Cancel    Decision = "cancel"
)

// ParseDecision maps a flag or config value to a Decision.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overwrite", "o":
		return Overwrite, nil
	case "merge", "m":
		return Merge, nil
	case "cancel", "c":
		return Cancel, nil
	}
	return "", fmt.Errorf("invalid choice %q: want overwrite, merge, or cancel", s)
}

// Prompter asks questions on an input/output stream pair.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// New returns a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), out: w}
}

// Out returns the prompter's output stream, for status lines interleaved
// with questions.
func (p *Prompter) Out() io.Writer { return p.out }

// Ask prints "label [default]: " and returns the trimmed answer, or the
// default when the answer is empty. EOF on stdin keeps the default.
func (p *Prompter) Ask(label, def string) (string, error) {
	fmt.Fprintf(p.out, "%s [%s]: ", label, def)

	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// AskDecision presents the existing-file menu. Cancel is the default;
// anything other than an overwrite or merge answer cancels.
func (p *Prompter) AskDecision(existingName string) (Decision, error) {
	fmt.Fprintf(p.out, "\n%s already exists.\n", existingName)
	fmt.Fprintf(p.out, "  (o)verwrite / (m)erge missing sections / (c)ancel? [c]: ")

	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return Cancel, fmt.Errorf("reading choice: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "o", "overwrite":
		return Overwrite, nil
	case "m", "merge":
		return Merge, nil
	default:
		return Cancel, nil
	}
}
