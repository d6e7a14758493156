// Package corpus defines the training-record data model and the split-file
// loader shared by every validation check. Records are read-only snapshots:
// once loaded they are never mutated, which is what lets the checks run as
// independent pure functions over the same slice.
package corpus

import (
	"encoding/json"
	"strings"
)

// ConversationKey is the canonical key holding the turn list in a record.
// Must match the key the training pipeline reads.
const ConversationKey = "messages"

// Valid turn roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ValidRoles is the fixed role set for conversation turns.
var ValidRoles = map[string]bool{
	RoleSystem:    true,
	RoleUser:      true,
	RoleAssistant: true,
}

// Record is one training example. It is a tagged union: Fields is non-nil
// when the source entry decoded to a JSON object, otherwise Value carries
// whatever did decode (string, number, array). Checks must handle the
// malformed variant explicitly instead of assuming object access succeeds.
type Record struct {
	Fields map[string]any
	Value  any
}

// Turn is a single role/content pair within a record.
type Turn struct {
	Role    string
	Content string
}

// NewRecord wraps a decoded JSON value as a Record.
func NewRecord(v any) Record {
	if m, ok := v.(map[string]any); ok {
		return Record{Fields: m}
	}
	return Record{Value: v}
}

// WellFormed reports whether the record decoded to a JSON object.
func (r Record) WellFormed() bool {
	return r.Fields != nil
}

// value returns the underlying decoded value regardless of variant.
func (r Record) value() any {
	if r.Fields != nil {
		return r.Fields
	}
	return r.Value
}

// RawTurns returns the undecoded turn list and whether the conversation key
// was present. Callers validating envelope shape want the raw value, not a
// pre-filtered view.
func (r Record) RawTurns() (any, bool) {
	if r.Fields == nil {
		return nil, false
	}
	v, ok := r.Fields[ConversationKey]
	return v, ok
}

// AssistantContent returns the content string of the first assistant turn,
// or false when the record has no usable assistant turn.
func (r Record) AssistantContent() (string, bool) {
	raw, ok := r.RawTurns()
	if !ok {
		return "", false
	}
	turns, ok := raw.([]any)
	if !ok {
		return "", false
	}
	for _, t := range turns {
		m, ok := t.(map[string]any)
		if !ok {
			continue
		}
		if role, _ := m["role"].(string); role != RoleAssistant {
			continue
		}
		content, ok := m["content"].(string)
		if !ok {
			return "", false
		}
		return content, true
	}
	return "", false
}

// CanonicalJSON serializes the record with object keys in sorted order so
// byte-equal output means content-equal records. encoding/json sorts map
// keys at every nesting level, which is exactly the canonical form the
// duplicate detector hashes.
func (r Record) CanonicalJSON() ([]byte, error) {
	return json.Marshal(r.value())
}

// SerializedText returns the full record as a JSON string, the surface the
// token estimator and PII scanner operate on. Falls back to an empty string
// if the value cannot be marshalled (cannot happen for decoder output).
func (r Record) SerializedText() string {
	b, err := json.Marshal(r.value())
	if err != nil {
		return ""
	}
	return string(b)
}

// ParseAssistantPayload decodes the assistant turn's content as JSON and
// returns the payload mapping. The second return is false when there is no
// assistant content, it is not valid JSON, or it decodes to a non-object.
func (r Record) ParseAssistantPayload() (map[string]any, bool) {
	content, ok := r.AssistantContent()
	if !ok || strings.TrimSpace(content) == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(content), &v); err != nil {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// TryParseJSON decodes text as JSON, returning false on empty input or any
// decode failure. Used by checks that treat unparseable assistant content as
// a warning rather than an error.
func TryParseJSON(text string) (any, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	return v, true
}

// EstimateTokens approximates the token count of text using the ~4
// characters per token heuristic. Avoids a tokenizer dependency at
// validation time; empty input estimates to zero.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	n := len(text) / 4
	if n < 1 {
		return 1
	}
	return n
}
