// Package types provides type definitions for structured data used throughout the nist-sentinel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Severity classifies a single validation finding.
type Severity string

// Severity levels for validation findings
const (
	SeverityPass    Severity = "pass"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Status is the final tri-state outcome of a validation run.
type Status string

// Validation run outcomes
const (
	StatusFailed             Status = "failed"
	StatusPassedWithWarnings Status = "passed_with_warnings"
	StatusPassed             Status = "passed"
)

// Finding is one structural observation from a rule check.
// Findings are immutable once created; insertion order within a
// severity bucket is preserved for display.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Passf creates a pass finding with a formatted message.
func Passf(format string, args ...any) Finding {
	return Finding{Severity: SeverityPass, Message: fmt.Sprintf(format, args...)}
}

// Warningf creates a warning finding with a formatted message.
func Warningf(format string, args ...any) Finding {
	return Finding{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// Errorf creates an error finding with a formatted message.
func Errorf(format string, args ...any) Finding {
	return Finding{Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

// Result holds the bucketed findings from one validation run over one
// report text. A Result is created fresh per run and never shared
// between runs.
type Result struct {
	Passed   []Finding `json:"passed"`
	Warnings []Finding `json:"warnings"`
	Errors   []Finding `json:"errors"`
}

// Add routes a finding into the bucket matching its severity.
// Unknown severities are treated as errors so they cannot pass silently.
func (r *Result) Add(f Finding) {
	switch f.Severity {
	case SeverityPass:
		r.Passed = append(r.Passed, f)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f)
	default:
		r.Errors = append(r.Errors, f)
	}
}

// AddAll routes each finding into its severity bucket.
func (r *Result) AddAll(findings []Finding) {
	for _, f := range findings {
		r.Add(f)
	}
}

// Status derives the verdict for the run: failed iff any errors,
// otherwise passed-with-warnings iff any warnings, otherwise passed.
func (r *Result) Status() Status {
	if len(r.Errors) > 0 {
		return StatusFailed
	}
	if len(r.Warnings) > 0 {
		return StatusPassedWithWarnings
	}
	return StatusPassed
}

// Total returns the total number of checks recorded across all buckets.
func (r *Result) Total() int {
	return len(r.Passed) + len(r.Warnings) + len(r.Errors)
}

// PassRate returns the percentage of checks that passed, 0 when no
// checks ran.
func (r *Result) PassRate() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(len(r.Passed)) / float64(total) * 100
}
