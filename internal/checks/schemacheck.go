package checks

import (
	"fmt"
	"sort"
	"strings"

	"datacheck/internal/corpus"
)

const (
	// Detailed schema warnings/errors are capped before collapsing to an
	// aggregate count, keeping reports readable on badly broken corpora.
	maxNonJSONWarnings    = 5
	maxSchemaErrorDetails = 10
	maxViolationsPerRec   = 3
)

// SchemaCompliance validates each record's assistant payload against the
// domain schema. Unparseable assistant content is a warning, not an error,
// and such records are excluded from schema checking. Full draft-07
// validation runs when the capability is available; otherwise the check
// degrades to a required-field presence test derived from the schema.
func SchemaCompliance(in Input) *Result {
	result := NewResult("Schema compliance")

	if !in.UseSchemaValidator {
		result.AddWarning("schema validator unavailable; falling back to required-key check")
	}

	checked := 0
	nonJSON := 0
	violating := 0

	for i, rec := range in.Records {
		content, ok := rec.AssistantContent()
		if !ok {
			continue
		}

		parsed, ok := corpus.TryParseJSON(content)
		if !ok {
			nonJSON++
			if nonJSON <= maxNonJSONWarnings {
				result.AddWarning(fmt.Sprintf("%s example %d: assistant content is not valid JSON", in.Label, i))
			}
			continue
		}

		payload, ok := parsed.(map[string]any)
		if !ok {
			nonJSON++
			continue
		}

		checked++

		var msgs []string
		if in.UseSchemaValidator {
			msgs = in.Schema.Validate(payload)
			if len(msgs) > maxViolationsPerRec {
				msgs = msgs[:maxViolationsPerRec]
			}
		} else if missing := in.Schema.MissingRequired(payload); len(missing) > 0 {
			sort.Strings(missing)
			msgs = []string{fmt.Sprintf("missing required keys: %v", missing)}
		}

		if len(msgs) > 0 {
			violating++
			if violating <= maxSchemaErrorDetails {
				result.AddError(fmt.Sprintf("%s example %d: schema violations: %s",
					in.Label, i, strings.Join(msgs, "; ")))
			}
		}
	}

	if violating > maxSchemaErrorDetails {
		result.AddError(fmt.Sprintf("%s: %d total schema violations (showing first %d)",
			in.Label, violating, maxSchemaErrorDetails))
	}
	if nonJSON > 0 {
		result.AddWarning(fmt.Sprintf("%s: %d examples have non-JSON assistant content", in.Label, nonJSON))
	}

	result.Stats["checked"] = checked
	result.Stats["non_json"] = nonJSON
	result.Stats["violations"] = violating
	return result
}
