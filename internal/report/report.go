// Package report aggregates check outcomes into per-domain reports, runs
// domains in parallel, and renders the human-readable output. The process
// exit code derived from AllPassed is the only machine-readable contract
// downstream automation depends on.
package report

import (
	"errors"

	"datacheck/internal/checks"
)

// ErrValidationFailed signals a completed run whose verdict is FAIL. The
// CLI maps it to a non-zero exit status without printing a second error.
var ErrValidationFailed = errors.New("dataset validation failed")

// DomainReport is the aggregation of all check results for one domain,
// built in check invocation order and immutable once the run completes.
type DomainReport struct {
	Domain       string
	Checks       []*checks.Result
	ExampleCount int
	SplitCounts  map[string]int
}

// Passed reports the domain verdict: the logical AND across all checks.
func (r *DomainReport) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// AllPassed reports the process-level verdict across every domain.
func AllPassed(reports []*DomainReport) bool {
	for _, r := range reports {
		if !r.Passed() {
			return false
		}
	}
	return true
}
