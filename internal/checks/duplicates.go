package checks

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const maxDuplicateDetails = 5

// Duplicates detects exact repeats by hashing each record's canonical
// serialization (object keys in sorted order) with SHA-256. The first
// occurrence of a hash is the canonical index; every later occurrence is an
// error naming both indices. Near-duplicates are out of scope; only records
// that are byte-identical after canonicalization are flagged.
func Duplicates(in Input) *Result {
	result := NewResult("Duplicates")

	seen := make(map[string]int, len(in.Records))
	dupCount := 0

	for i, rec := range in.Records {
		canonical, err := rec.CanonicalJSON()
		if err != nil {
			// Decoder output always re-marshals; skip rather than guess.
			continue
		}
		sum := sha256.Sum256(canonical)
		key := hex.EncodeToString(sum[:])

		if first, ok := seen[key]; ok {
			dupCount++
			if dupCount <= maxDuplicateDetails {
				result.AddError(fmt.Sprintf("%s example %d: duplicate of example %d", in.Label, i, first))
			}
			continue
		}
		seen[key] = i
	}

	if dupCount > maxDuplicateDetails {
		result.AddError(fmt.Sprintf("%s: %d total duplicates found (showing first %d)",
			in.Label, dupCount, maxDuplicateDetails))
	}
	result.Stats["duplicates"] = dupCount
	return result
}
