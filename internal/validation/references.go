package validation

import (
	"strings"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

// CheckInvalidReferences flags any mention of a known-wrong publication
// identifier. The test is a plain substring match: context never makes
// a superseded identifier acceptable.
func CheckInvalidReferences(content string, invalidIDs []string) []types.Finding {
	findings := make([]types.Finding, 0, len(invalidIDs))
	for _, id := range invalidIDs {
		if strings.Contains(content, id) {
			findings = append(findings, types.Errorf("Invalid publication referenced: %s", id))
		} else {
			findings = append(findings, types.Passf("No reference to invalid publication: %s", id))
		}
	}
	return findings
}

// CheckCoverage verifies the report mentions every key publication.
// Missing identifiers are collected into a single warning rather than
// one finding each.
func CheckCoverage(content string, keyIDs []string) []types.Finding {
	var missing []string
	for _, id := range keyIDs {
		if !strings.Contains(content, id) {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		return []types.Finding{
			types.Warningf("Key publications not mentioned: %s", strings.Join(missing, ", ")),
		}
	}
	return []types.Finding{types.Passf("All key publications referenced")}
}
