package checks

import (
	"fmt"
	"sort"
)

// Balance thresholds, kept verbatim from the curation pipeline's tuning
// rather than re-derived: strictly above 3x is an error, strictly above 2x
// is a warning, 2x and below passes silently.
const (
	imbalanceErrorRatio = 3.0
	imbalanceWarnRatio  = 2.0
)

// categoryKey is the payload field carrying the categorical label.
const categoryKey = "document_type"

// unknownCategory buckets records whose payload parses but carries no
// label; unlabeled data still participates in the distribution.
const unknownCategory = "unknown"

// CategoryBalance builds the label frequency distribution across assistant
// payloads and fails when the most common category exceeds 3x the least
// common. With fewer than two categories balance is undefined and only a
// warning is emitted. The distribution and ratio always land in stats.
func CategoryBalance(in Input) *Result {
	result := NewResult("Category balance")

	counts := make(map[string]int)
	for _, rec := range in.Records {
		payload, ok := rec.ParseAssistantPayload()
		if !ok {
			continue
		}
		label, ok := payload[categoryKey].(string)
		if !ok || label == "" {
			label = unknownCategory
		}
		counts[label]++
	}

	if len(counts) == 0 {
		result.AddWarning(fmt.Sprintf("%s: no %s values found", in.Label, categoryKey))
		return result
	}

	result.Stats["category_distribution"] = distributionString(counts)

	if len(counts) < 2 {
		result.AddWarning(fmt.Sprintf("%s: only 1 category found", in.Label))
		return result
	}

	maxCount, minCount := 0, 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
		if minCount == 0 || c < minCount {
			minCount = c
		}
	}

	ratio := float64(maxCount) / float64(minCount)
	result.Stats["imbalance_ratio"] = fmt.Sprintf("%.1fx", ratio)

	switch {
	case ratio > imbalanceErrorRatio:
		result.AddError(fmt.Sprintf(
			"%s: imbalanced categories -- max=%d, min=%d (ratio %.1fx, threshold %.0fx)",
			in.Label, maxCount, minCount, ratio, imbalanceErrorRatio))
	case ratio > imbalanceWarnRatio:
		result.AddWarning(fmt.Sprintf(
			"%s: moderate category imbalance -- max=%d, min=%d (ratio %.1fx)",
			in.Label, maxCount, minCount, ratio))
	}

	return result
}

// distributionString renders a count map ordered by descending count, ties
// broken by name, so the stat is stable across runs.
func distributionString(counts map[string]int) string {
	type entry struct {
		label string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, entry{label, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].label < entries[j].label
	})

	out := ""
	for i, e := range entries {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%d", e.label, e.count)
	}
	return out
}
