// Package checks implements the validation algorithms that certify a
// domain's corpus: envelope shape, schema compliance, empty fields,
// category balance, duplicates, token length, split ratios, and PII. Every
// check is a pure function over the loaded record snapshot; checks never
// mutate records and never depend on each other's output.
package checks

import (
	"datacheck/internal/corpus"
	"datacheck/internal/schema"
)

// Result is the outcome of one check over a domain's records. Passed is
// false iff Errors is non-empty; warnings are informational and never
// affect the verdict. A Result is built during the check and treated as
// immutable afterwards.
type Result struct {
	Name     string
	Passed   bool
	Errors   []string
	Warnings []string
	Stats    map[string]any
}

// NewResult returns a passing, empty result for the named check.
func NewResult(name string) *Result {
	return &Result{
		Name:   name,
		Passed: true,
		Stats:  make(map[string]any),
	}
}

// AddError records a violation and flips the result to failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Passed = false
}

// AddWarning records an informational finding.
func (r *Result) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Fail returns a failed result carrying the given errors. Used for
// run-level findings (unreadable directory, schema load failure) that are
// reported through the same channel as check outcomes.
func Fail(name string, errors ...string) *Result {
	return &Result{
		Name:   name,
		Passed: false,
		Errors: errors,
		Stats:  make(map[string]any),
	}
}

// Input is the immutable per-domain snapshot every check reads. Schema may
// be nil when schema loading failed; UseSchemaValidator is the capability
// flag resolved once at startup, threaded in explicitly so the fallback
// path is testable.
type Input struct {
	Label              string
	Records            []corpus.Record
	Schema             *schema.Schema
	UseSchemaValidator bool
	SplitCounts        map[string]int
}

// Descriptor names one check and binds it to its function. The aggregator
// runs a []Descriptor in order, which fixes report ordering.
type Descriptor struct {
	Name string
	Run  func(in Input) *Result
}

// Registry returns the full check sequence in canonical order. The schema
// compliance check is included only when a schema was loaded; everything
// else always runs.
func Registry(withSchema bool) []Descriptor {
	descriptors := []Descriptor{
		{Name: "JSON validity", Run: JSONValidity},
		{Name: "Conversation format", Run: ConversationFormat},
	}
	if withSchema {
		descriptors = append(descriptors, Descriptor{Name: "Schema compliance", Run: SchemaCompliance})
	}
	descriptors = append(descriptors,
		Descriptor{Name: "Empty fields", Run: EmptyFields},
		Descriptor{Name: "Category balance", Run: CategoryBalance},
		Descriptor{Name: "Duplicates", Run: Duplicates},
		Descriptor{Name: "Token length", Run: TokenLength},
		Descriptor{Name: "Split ratios", Run: SplitRatios},
		Descriptor{Name: "PII detection", Run: PII},
	)
	return descriptors
}
