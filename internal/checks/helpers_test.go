package checks

import (
	"fmt"

	"datacheck/internal/corpus"
)

// convRecord builds a well-formed three-turn conversation record.
func convRecord(system, user, assistant string) corpus.Record {
	return corpus.NewRecord(map[string]any{
		"messages": []any{
			map[string]any{"role": "system", "content": system},
			map[string]any{"role": "user", "content": user},
			map[string]any{"role": "assistant", "content": assistant},
		},
	})
}

// payloadRecord builds a conversation whose assistant turn carries a JSON
// payload with the given document type.
func payloadRecord(docType string, seq int) corpus.Record {
	payload := fmt.Sprintf(`{"document_type":%q,"title":"doc %d"}`, docType, seq)
	return convRecord("You extract structured data.", fmt.Sprintf("input %d", seq), payload)
}

// input wraps records into a check Input with a test label.
func input(records ...corpus.Record) Input {
	return Input{Label: "[test-domain]", Records: records}
}
