package validation

import (
	"regexp"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

var (
	// csrcURLPattern extracts every csrc.nist.gov URL from the report.
	csrcURLPattern = regexp.MustCompile(`https://csrc\.nist\.gov[^\s)]+`)

	// canonicalURLPattern is the publication path template. The segment
	// after the series number may carry a sub-revision component, as in
	// /pubs/sp/800/218/a/final or /pubs/sp/800/171/r3/final.
	canonicalURLPattern = regexp.MustCompile(`^https://csrc\.nist\.gov/pubs/sp/\d+/[^/\s]+(?:/[^/\s]+)?/final`)
)

// CheckURLs verifies that every NIST URL in the report follows the
// canonical publication path template. Malformed URLs are warnings, not
// errors: legitimate path variants exist for other publication series.
func CheckURLs(content string) []types.Finding {
	urls := csrcURLPattern.FindAllString(content, -1)

	findings := make([]types.Finding, 0, len(urls))
	for _, url := range urls {
		if canonicalURLPattern.MatchString(url) {
			findings = append(findings, types.Passf("Correct URL format: %s", url))
		} else {
			findings = append(findings, types.Warningf("Check URL format: %s", url))
		}
	}
	return findings
}
