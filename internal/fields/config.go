package fields

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Pattern overrides let operators extend the cascades for report
// templates the built-ins miss, without a rebuild. The file replaces
// the pattern list of any field it names; unknown fields are rejected.

const overridesSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "well": {"$ref": "#/$defs/patternMap"},
    "stimulation": {"$ref": "#/$defs/patternMap"}
  },
  "$defs": {
    "patternMap": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "minItems": 1,
        "items": {"type": "string", "minLength": 1}
      }
    }
  }
}`

// Overrides holds replacement pattern lists keyed by field name.
type Overrides struct {
	Well        map[string][]string `json:"well"`
	Stimulation map[string][]string `json:"stimulation"`
}

// LoadOverrides reads and validates a pattern-override file. The file
// must match the embedded schema, every pattern must compile, and every
// pattern must have at least one capture group.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern overrides: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("patterns.schema.json", strings.NewReader(overridesSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("patterns.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse pattern overrides: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("pattern overrides do not match schema: %w", err)
	}

	var o Overrides
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("decode pattern overrides: %w", err)
	}
	for section, m := range map[string]map[string][]string{"well": o.Well, "stimulation": o.Stimulation} {
		for name, patterns := range m {
			for _, p := range patterns {
				re, err := regexp.Compile("(?i)" + p)
				if err != nil {
					return nil, fmt.Errorf("%s.%s: invalid pattern %q: %w", section, name, p, err)
				}
				if re.NumSubexp() < 1 {
					return nil, fmt.Errorf("%s.%s: pattern %q has no capture group", section, name, p)
				}
			}
		}
	}
	return &o, nil
}

// WithOverrides returns a copy of the table with the pattern lists of
// the named fields replaced. Field names not present in the table are
// an error.
func (t Table) WithOverrides(overrides map[string][]string) (Table, error) {
	if len(overrides) == 0 {
		return t, nil
	}
	out := make(Table, len(t))
	copy(out, t)
	for name, patterns := range overrides {
		found := false
		for i := range out {
			if out[i].Name == name {
				out[i].Patterns = patterns
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("pattern override for unknown field %q", name)
		}
	}
	return out, nil
}
