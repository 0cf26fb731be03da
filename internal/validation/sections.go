package validation

import (
	"strings"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

// requiredSections are the headings every digest report must contain,
// in the order the generation prompt requests them.
var requiredSections = []string{
	"Executive Summary",
	"Latest Updates Discovered",
	"Impact on Software Development Organizations",
	"Key Actions and Checklist",
	"References and Citations",
	"Quick Reference Table",
}

// CheckSections verifies the report contains each required section
// heading. Matching is a case-sensitive substring test so heading
// markup around the literal text does not matter.
func CheckSections(content string) []types.Finding {
	findings := make([]types.Finding, 0, len(requiredSections))
	for _, section := range requiredSections {
		if strings.Contains(content, section) {
			findings = append(findings, types.Passf("Section found: %s", section))
		} else {
			findings = append(findings, types.Errorf("Missing required section: %s", section))
		}
	}
	return findings
}
