package detect

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed rules.yaml
var rawRules []byte

//go:embed schema/rules.schema.json
var schemaBytes []byte

var (
	loadOnce    sync.Once
	loadedRules Table
	loadErr     error
	printer     = message.NewPrinter(language.English)
)

// Rule maps a set of marker files to a project type and its default commands.
type Rule struct {
	Type     string   `yaml:"type"`
	Language string   `yaml:"language"`
	Markers  []string `yaml:"markers"`
	Build    string   `yaml:"build"`
	Test     string   `yaml:"test"`
}

// Fallback is the rule applied when no marker matches.
type Fallback struct {
	Type  string `yaml:"type"`
	Build string `yaml:"build"`
	Test  string `yaml:"test"`
}

// Table is the full detection table: ordered rules plus the generic fallback.
type Table struct {
	Rules    []Rule   `yaml:"rules"`
	Fallback Fallback `yaml:"fallback"`
}

// Rules returns the embedded detection table, validated against its JSON
// Schema on first use. A schema violation in the embedded asset is a
// programming error and is reported with instance paths.
func Rules() (Table, error) {
	loadOnce.Do(func() {
		loadErr = validateRules(rawRules)
		if loadErr != nil {
			return
		}
		loadErr = yaml.Unmarshal(rawRules, &loadedRules)
		if loadErr != nil {
			loadErr = fmt.Errorf("parsing rules table: %w", loadErr)
		}
	})
	return loadedRules, loadErr
}

// validateRules checks raw YAML against the embedded rules schema.
func validateRules(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return fmt.Errorf("unmarshaling rules schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("rules.schema.json", doc); err != nil {
		return fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := c.Compile("rules.schema.json")
	if err != nil {
		return fmt.Errorf("compiling rules schema: %w", err)
	}

	// Decode YAML, round-trip through JSON so the validator sees
	// JSON-compatible types only.
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing rules YAML: %w", err)
	}
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting rules to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing rules for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validating rules table: %w", err)
	}
	return fmt.Errorf("rules table is invalid:\n%s", strings.Join(issueLines(ve), "\n"))
}

// issueLines walks the validation error tree and formats leaf issues as
// "<path>: <message>" lines.
func issueLines(ve *jsonschema.ValidationError) []string {
	var lines []string
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			path := "/" + strings.Join(e.InstanceLocation, "/")
			msg := ""
			if e.ErrorKind != nil {
				msg = e.ErrorKind.LocalizedString(printer)
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", path, msg))
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)
	if len(lines) == 0 {
		lines = append(lines, "  "+ve.Error())
	}
	return lines
}
