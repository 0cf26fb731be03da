package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

func TestCheckURLs_CanonicalWithSubRevision(t *testing.T) {
	findings := CheckURLs("See https://csrc.nist.gov/pubs/sp/800/218/a/final for the profile.")

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityPass, findings[0].Severity)
}

func TestCheckURLs_CanonicalWithoutSubRevision(t *testing.T) {
	findings := CheckURLs("See https://csrc.nist.gov/pubs/sp/800/218/final for the framework.")

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityPass, findings[0].Severity)
}

func TestCheckURLs_MissingFinalSegment(t *testing.T) {
	findings := CheckURLs("See https://csrc.nist.gov/pubs/sp/800/210/ for cloud guidance.")

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "Check URL format")
}

func TestCheckURLs_NonPublicationPath(t *testing.T) {
	findings := CheckURLs("Visit https://csrc.nist.gov/projects/ssdf for the project page.")

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityWarning, findings[0].Severity)
}

func TestCheckURLs_NoURLs(t *testing.T) {
	findings := CheckURLs("No links in this report.")

	assert.Empty(t, findings)
}

func TestCheckURLs_MarkdownLinkParenthesisExcluded(t *testing.T) {
	findings := CheckURLs("[SP 800-218A](https://csrc.nist.gov/pubs/sp/800/218/a/final) is final.")

	require.Len(t, findings, 1)
	assert.Equal(t, types.SeverityPass, findings[0].Severity)
}

func TestCheckURLs_MixedResults(t *testing.T) {
	content := `References:
- https://csrc.nist.gov/pubs/sp/800/171/r3/final
- https://csrc.nist.gov/pubs/sp/800/210/`

	findings := CheckURLs(content)

	require.Len(t, findings, 2)
	assert.Equal(t, types.SeverityPass, findings[0].Severity)
	assert.Equal(t, types.SeverityWarning, findings[1].Severity)
}
