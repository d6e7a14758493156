package checks

import (
	"fmt"
	"sort"
	"strings"
)

const maxEmptyFieldDetails = 10

// EmptyFields walks each parsed assistant payload and reports every field
// whose value is null or an all-whitespace string, as a dotted/indexed
// path. Absent optional fields are not flagged, only present-but-empty
// values.
func EmptyFields(in Input) *Result {
	result := NewResult("Empty fields")
	emptyCount := 0

	for i, rec := range in.Records {
		payload, ok := rec.ParseAssistantPayload()
		if !ok {
			continue
		}

		empties := findEmptyFields(payload, "")
		if len(empties) == 0 {
			continue
		}
		emptyCount++
		if emptyCount <= maxEmptyFieldDetails {
			result.AddError(fmt.Sprintf("%s example %d: empty fields: %s",
				in.Label, i, strings.Join(empties, ", ")))
		}
	}

	if emptyCount > maxEmptyFieldDetails {
		result.AddError(fmt.Sprintf("%s: %d total examples with empty fields (showing first %d)",
			in.Label, emptyCount, maxEmptyFieldDetails))
	}
	result.Stats["examples_with_empties"] = emptyCount
	return result
}

// findEmptyFields recursively collects paths of null and whitespace-only
// values inside a payload mapping. Keys are visited in sorted order so
// repeated runs produce identical reports.
func findEmptyFields(obj map[string]any, prefix string) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var empties []string
	for _, key := range keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch value := obj[key].(type) {
		case nil:
			empties = append(empties, path)
		case string:
			if strings.TrimSpace(value) == "" {
				empties = append(empties, path)
			}
		case map[string]any:
			empties = append(empties, findEmptyFields(value, path)...)
		case []any:
			for j, item := range value {
				if m, ok := item.(map[string]any); ok {
					empties = append(empties, findEmptyFields(m, fmt.Sprintf("%s[%d]", path, j))...)
				}
			}
		}
	}
	return empties
}
