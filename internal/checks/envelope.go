package checks

import (
	"fmt"
	"strings"

	"datacheck/internal/corpus"
)

// JSONValidity verifies that every loaded entry is a JSON object. Entries
// that parsed as something else (string, number, array) survived loading
// but cannot be conversations.
func JSONValidity(in Input) *Result {
	result := NewResult("JSON validity")
	for i, rec := range in.Records {
		if !rec.WellFormed() {
			result.AddError(fmt.Sprintf("%s example %d: not a JSON object", in.Label, i))
		}
	}
	result.Stats["total"] = len(in.Records)
	return result
}

// ConversationFormat enforces the universal conversation envelope,
// independent of domain: the canonical conversation key is present, the
// turn list is non-empty, every turn is an object with a recognized role
// and non-empty trimmed content, and the record contains at least one user
// and one assistant turn. Reports every violation found, never just the
// first.
func ConversationFormat(in Input) *Result {
	result := NewResult("Conversation format")

	for i, rec := range in.Records {
		if !rec.WellFormed() {
			// Already reported by JSONValidity; nothing to inspect here.
			continue
		}

		raw, ok := rec.RawTurns()
		if !ok {
			if _, hasLegacy := rec.Fields["conversations"]; hasLegacy {
				result.AddError(fmt.Sprintf(
					"%s example %d: uses 'conversations' key -- must use %q to match the training pipeline",
					in.Label, i, corpus.ConversationKey))
			} else {
				result.AddError(fmt.Sprintf("%s example %d: missing %q key", in.Label, i, corpus.ConversationKey))
			}
			continue
		}

		turns, ok := raw.([]any)
		if !ok || len(turns) == 0 {
			result.AddError(fmt.Sprintf("%s example %d: %q must be a non-empty list", in.Label, i, corpus.ConversationKey))
			continue
		}

		rolesSeen := make(map[string]bool, 3)
		for j, t := range turns {
			turn, ok := t.(map[string]any)
			if !ok {
				result.AddError(fmt.Sprintf("%s example %d turn %d: not an object", in.Label, i, j))
				continue
			}

			role, _ := turn["role"].(string)
			if !corpus.ValidRoles[role] {
				result.AddError(fmt.Sprintf("%s example %d turn %d: invalid role %q", in.Label, i, j, role))
			} else {
				rolesSeen[role] = true
			}

			content, isString := turn["content"].(string)
			if !isString || strings.TrimSpace(content) == "" {
				result.AddError(fmt.Sprintf("%s example %d turn %d: empty content for role %q", in.Label, i, j, role))
			}
		}

		if !rolesSeen[corpus.RoleUser] {
			result.AddError(fmt.Sprintf("%s example %d: missing %q role", in.Label, i, corpus.RoleUser))
		}
		if !rolesSeen[corpus.RoleAssistant] {
			result.AddError(fmt.Sprintf("%s example %d: missing %q role", in.Label, i, corpus.RoleAssistant))
		}
	}

	return result
}
