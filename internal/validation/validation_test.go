package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsenmahmood/nist-sentinel/internal/catalog"
	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

type fakeTable struct {
	verified []types.Publication
	invalid  []string
	keys     []string
}

func (f fakeTable) Verified() []types.Publication { return f.verified }
func (f fakeTable) InvalidIDs() []string          { return f.invalid }
func (f fakeTable) KeyIDs() []string              { return f.keys }

// goodReport satisfies every check against the real catalog: all six
// required sections, key publications mentioned with canonical dates,
// no invalid references, one well-formed URL, one small table.
const goodReport = `# NIST SP 800 Compliance Update

## Executive Summary
Recent NIST guidance raises the bar for secure software development programs.

## Latest Updates Discovered
- NIST SP 800-218: Secure Software Development Framework v1.1, published 2022-02-04.
- NIST SP 800-218A: SSDF Community Profile for Generative AI, published 2024-07-26.
- NIST SP 800-204D: Software Supply Chain Security in DevSecOps CI/CD, published 2024-02-01.
- NIST SP 800-171 Rev. 3: Protecting Controlled Unclassified Information.

## Impact on Software Development Organizations
Teams must integrate SSDF practices into their CI/CD pipelines.

## Key Actions and Checklist
- Adopt SSDF practices (PW.5, PO.1) with high priority.

## References and Citations
- [NIST SP 800-218A](https://csrc.nist.gov/pubs/sp/800/218/a/final)

## Quick Reference Table
| Control/Practice | NIST Reference | Action Required | Priority |
|---|---|---|---|
| SSDF adoption | SP 800-218 | Integrate into SDLC | High |
| AI profile | SP 800-218A | Extend SSDF to AI | High |
| Supply chain | SP 800-204D | Secure pipelines | Medium |
`

func TestRun_CleanReportPasses(t *testing.T) {
	result := Run(goodReport, catalog.Ref{})

	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, types.StatusPassed, result.Status())
	assert.NotEmpty(t, result.Passed)
}

func TestRun_EmptyReportFails(t *testing.T) {
	result := Run("", catalog.Ref{})

	assert.Equal(t, types.StatusFailed, result.Status())
	// Six missing sections are errors; invalid references and
	// duplicate-table checks still pass on empty input.
	assert.Len(t, result.Errors, 6)
}

func TestRun_InvalidReferenceFailsDespiteSections(t *testing.T) {
	content := goodReport + "\nAlso see SP 800-204C for microservices guidance."

	result := Run(content, catalog.Ref{})

	assert.Equal(t, types.StatusFailed, result.Status())
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "800-204C")
}

func TestRun_WarningOnlyReportPassesWithWarnings(t *testing.T) {
	table := fakeTable{
		verified: []types.Publication{{ID: "800-218A", Date: "2024-07-26"}},
		keys:     []string{"800-218A"},
	}
	content := `## Executive Summary
## Latest Updates Discovered
## Impact on Software Development Organizations
## Key Actions and Checklist
## References and Citations
## Quick Reference Table
SP 800-218A was published 2024-07-25.`

	result := Run(content, table)

	assert.Empty(t, result.Errors)
	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, types.StatusPassedWithWarnings, result.Status())
}

func TestRun_ChecksNeverError(t *testing.T) {
	// Malformed input produces findings, not faults.
	assert.NotPanics(t, func() {
		_ = Run("|||\n\x00\xff garbage |", catalog.Ref{})
	})
}
