// Package schema loads per-domain JSON Schema documents and wraps the
// draft-07 validation capability. Compilation is attempted once at load
// time; when it fails the schema degrades to its required-field list and
// the compliance check falls back to a presence check.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is one domain's structural contract, loaded once per run and
// shared read-only by every record of that domain.
type Schema struct {
	// Raw is the decoded schema document.
	Raw map[string]any
	// Required lists the schema's top-level required field names, in
	// document order. Always populated, even when compilation succeeds,
	// so the fallback path needs no re-parse.
	Required []string

	compiled *gojsonschema.Schema
}

// Load reads and decodes the schema document for a domain from
// <dir>/<domain>.json and attempts to compile it for draft-07 validation.
// A compile failure is not a load failure: the schema is still usable via
// its required-field list.
func Load(dir, domain string) (*Schema, error) {
	path := filepath.Join(dir, domain+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema for domain %q: %w", domain, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema for domain %q: invalid JSON: %w", domain, err)
	}

	s := &Schema{Raw: raw}
	if req, ok := raw["required"].([]any); ok {
		for _, v := range req {
			if name, ok := v.(string); ok {
				s.Required = append(s.Required, name)
			}
		}
	}

	if compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data)); err == nil {
		s.compiled = compiled
	}

	return s, nil
}

// CanValidate reports whether full draft-07 validation is available. When
// false, callers fall back to the Required list.
func (s *Schema) CanValidate() bool {
	return s != nil && s.compiled != nil
}

// Validate runs the compiled schema against a payload mapping and returns
// the violation messages, empty when the payload conforms. Callers must
// check CanValidate first; Validate on an uncompiled schema reports the
// missing capability as a single violation rather than panicking.
func (s *Schema) Validate(payload map[string]any) []string {
	if !s.CanValidate() {
		return []string{"schema validation capability unavailable"}
	}
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		return []string{fmt.Sprintf("validation failed to run: %v", err)}
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		msgs = append(msgs, re.String())
	}
	return msgs
}

// MissingRequired returns the Required fields absent from the payload, in
// schema order. This is the fallback check used when CanValidate is false.
func (s *Schema) MissingRequired(payload map[string]any) []string {
	var missing []string
	for _, name := range s.Required {
		if _, ok := payload[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
