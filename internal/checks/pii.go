package checks

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const maxPIIDetailsPerFamily = 3

// placeholderIndicators are case-insensitive substrings that mark a match
// as synthetic-generator output rather than real PII. Kept verbatim from
// the curation pipeline's tuning.
var placeholderIndicators = []string{
	"john doe", "jane doe", "acme", "example", "test", "sample",
	"lorem", "ipsum", "placeholder", "xxx", "redacted", "[name]",
	"[patient]", "[doctor]", "[company]",
}

// reservedSSNs are well-known dummy values that can never be real numbers.
var reservedSSNs = map[string]bool{
	"000-00-0000": true,
	"123-45-6789": true,
}

// piiPattern pairs one detector family with its false-positive suppression
// predicate, so patterns and exceptions stay independently testable.
type piiPattern struct {
	name     string
	re       *regexp.Regexp
	suppress func(match string) bool
}

var piiPatterns = []piiPattern{
	{
		name: "ssn",
		re:   regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		suppress: func(m string) bool {
			return containsPlaceholder(m) || reservedSSNs[m]
		},
	},
	{
		name: "email",
		re:   regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		suppress: func(m string) bool {
			lower := strings.ToLower(m)
			return containsPlaceholder(m) ||
				strings.Contains(lower, "example.com") ||
				strings.Contains(lower, "test.com")
		},
	},
	{
		name:     "phone_us",
		re:       regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		suppress: containsPlaceholder,
	},
	{
		name: "credit_card",
		re:   regexp.MustCompile(`\b(?:\d{4}[-\s]?){3}\d{1,4}\b`),
		suppress: func(m string) bool {
			// A digit group that fails the Luhn checksum cannot be a real
			// card number.
			return containsPlaceholder(m) || !LuhnValid(m)
		},
	},
}

// PII scans each record's full serialized text against the four pattern
// families and filters raw matches through per-family placeholder
// suppression. Any surviving match is an error; details are capped per
// family, and the total surviving count is always reported as an aggregate
// error when non-zero. Detection only, never redaction.
func PII(in Input) *Result {
	result := NewResult("PII detection")
	counts := make(map[string]int, len(piiPatterns))

	for i, rec := range in.Records {
		text := rec.SerializedText()
		for _, p := range piiPatterns {
			matches := p.re.FindAllString(text, -1)
			if len(matches) == 0 {
				continue
			}

			var real []string
			for _, m := range matches {
				if !p.suppress(m) {
					real = append(real, m)
				}
			}
			if len(real) == 0 {
				continue
			}

			counts[p.name] += len(real)
			if counts[p.name] <= maxPIIDetailsPerFamily {
				result.AddError(fmt.Sprintf("%s example %d: potential %s detected: %q",
					in.Label, i, p.name, real[0]))
			}
		}
	}

	result.Stats["pii_counts"] = piiCountsString(counts)

	total := 0
	for _, c := range counts {
		total += c
	}
	if total > 0 {
		result.AddError(fmt.Sprintf("%s: %d total PII matches found", in.Label, total))
	}
	return result
}

func containsPlaceholder(match string) bool {
	lower := strings.ToLower(strings.TrimSpace(match))
	for _, indicator := range placeholderIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// LuhnValid reports whether the digits of s satisfy the Luhn modulo-10
// checksum. Non-digit characters are ignored; fewer than 13 digits can
// never be a card number.
func LuhnValid(s string) bool {
	var digits []int
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) < 13 {
		return false
	}

	checksum := 0
	for i := 0; i < len(digits); i++ {
		d := digits[len(digits)-1-i]
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		checksum += d
	}
	return checksum%10 == 0
}

func piiCountsString(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", name, counts[name]))
	}
	return strings.Join(parts, ", ")
}
