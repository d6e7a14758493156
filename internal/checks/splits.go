package checks

import (
	"fmt"
	"sort"
	"strings"

	"datacheck/internal/corpus"
)

// Expected split proportions and the absolute tolerance band around them.
var expectedRatios = map[string]float64{
	"train":      0.80,
	"validation": 0.10,
	"test":       0.10,
}

const ratioTolerance = 0.05

// SplitRatios validates the observed train/validation/test proportions
// against the expected 80/10/10 layout. A split is in error when missing,
// empty, or when its observed fraction deviates from the expectation by
// more than the tolerance. Purely arithmetic: depends only on the loader's
// counts, never on record content.
func SplitRatios(in Input) *Result {
	result := NewResult("Split ratios")

	total := 0
	for _, count := range in.SplitCounts {
		total += count
	}
	if total == 0 {
		result.AddError("no examples found in any split")
		return result
	}

	var missing []string
	for _, split := range corpus.SplitNames {
		if in.SplitCounts[split] == 0 {
			missing = append(missing, split)
		}
	}
	if len(missing) > 0 {
		result.AddError(fmt.Sprintf("missing or empty splits: %s", strings.Join(missing, ", ")))
	}

	splits := make([]string, 0, len(in.SplitCounts))
	for split := range in.SplitCounts {
		splits = append(splits, split)
	}
	sort.Strings(splits)

	ratioStats := make([]string, 0, len(splits))
	for _, split := range splits {
		ratio := float64(in.SplitCounts[split]) / float64(total)
		ratioStats = append(ratioStats, fmt.Sprintf("%s=%.2f%%", split, ratio*100))

		expected, ok := expectedRatios[split]
		if !ok {
			continue
		}
		deviation := ratio - expected
		if deviation < 0 {
			deviation = -deviation
		}
		if deviation > ratioTolerance {
			result.AddError(fmt.Sprintf(
				"split %q: ratio %.2f%% deviates from expected %.0f%% (tolerance %.0f%%)",
				split, ratio*100, expected*100, ratioTolerance*100))
		}
	}

	result.Stats["split_counts"] = splitCountsString(in.SplitCounts)
	result.Stats["split_ratios"] = strings.Join(ratioStats, ", ")
	return result
}

func splitCountsString(counts map[string]int) string {
	parts := make([]string, 0, len(corpus.SplitNames))
	for _, split := range corpus.SplitNames {
		parts = append(parts, fmt.Sprintf("%s=%d", split, counts[split]))
	}
	return strings.Join(parts, ", ")
}
