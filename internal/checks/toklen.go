package checks

import (
	"fmt"
	"sort"

	"datacheck/internal/corpus"
)

const (
	// MaxTokenLength is the estimated-token ceiling above which a record is
	// flagged as an outlier. Long examples are undesirable but not invalid,
	// so outliers are warnings, never errors.
	MaxTokenLength = 4096

	maxOutlierDetails = 5
)

// TokenLength estimates the token count of every record's serialized text
// and flags those above MaxTokenLength. Min/max/mean/median lengths and the
// outlier count always land in stats, whether or not any outlier exists.
func TokenLength(in Input) *Result {
	result := NewResult("Token length")

	lengths := make([]int, 0, len(in.Records))
	outliers := 0

	for i, rec := range in.Records {
		est := corpus.EstimateTokens(rec.SerializedText())
		lengths = append(lengths, est)

		if est > MaxTokenLength {
			outliers++
			if outliers <= maxOutlierDetails {
				result.AddWarning(fmt.Sprintf("%s example %d: ~%d tokens (>%d)",
					in.Label, i, est, MaxTokenLength))
			}
		}
	}

	if len(lengths) > 0 {
		sorted := append([]int(nil), lengths...)
		sort.Ints(sorted)

		total := 0
		for _, n := range lengths {
			total += n
		}

		result.Stats["min_tokens"] = sorted[0]
		result.Stats["max_tokens"] = sorted[len(sorted)-1]
		result.Stats["mean_tokens"] = total / len(lengths)
		result.Stats["median_tokens"] = sorted[len(sorted)/2]
	}
	result.Stats["outliers"] = outliers

	if outliers > 0 {
		result.AddWarning(fmt.Sprintf("%s: %d examples exceed %d tokens", in.Label, outliers, MaxTokenLength))
	}

	return result
}
