// Package validation checks a generated digest report for structural
// completeness and referential accuracy against the trusted publication
// catalog. The upstream generator is a non-deterministic text model, so
// its output is treated purely as untrusted text: every anomaly becomes
// a finding, never a returned error, and the caller decides what to do
// with the verdict.
package validation

import (
	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

// Table is the read-only reference data the checks consult.
type Table interface {
	// Verified returns the trusted records with canonical dates.
	Verified() []types.Publication
	// InvalidIDs returns identifiers that must never appear in a report.
	InvalidIDs() []string
	// KeyIDs returns identifiers every report must mention.
	KeyIDs() []string
}

// Run executes every rule check against the report text and buckets the
// findings by severity. Check order affects only display grouping; the
// verdict depends solely on bucket contents.
func Run(content string, table Table) *types.Result {
	result := &types.Result{}

	result.AddAll(CheckSections(content))
	result.AddAll(CheckDates(content, table.Verified()))
	result.AddAll(CheckInvalidReferences(content, table.InvalidIDs()))
	result.AddAll(CheckURLs(content))
	result.AddAll(CheckDuplicateTables(content))
	result.AddAll(CheckCoverage(content, table.KeyIDs()))

	return result
}
