package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

const pageHTML = `<html><body>
	<nav>Site navigation</nav>
	<main>
		<h1>SP 800-218A</h1>
		<p>Secure Software Development Framework Community Profile for Generative AI.</p>
	</main>
</body></html>`

func TestContent_ExtractsWithMetadataHeader(t *testing.T) {
	meta := &types.Publication{
		ID:      "800-218A",
		Title:   "SSDF Community Profile for Generative AI",
		Date:    "2024-07-26",
		Version: "Final",
	}

	content := Content(pageHTML, "https://csrc.nist.gov/pubs/sp/800/218/a/final", meta)

	assert.Contains(t, content, "# Source: https://csrc.nist.gov/pubs/sp/800/218/a/final")
	assert.Contains(t, content, "Published: 2024-07-26")
	assert.Contains(t, content, "Version: Final")
	assert.Contains(t, content, "Community Profile for Generative AI")
	assert.NotContains(t, content, "Site navigation")
	// Final publications do not get a status line
	assert.NotContains(t, content, "Status:")
}

func TestContent_DraftStatusSurfaced(t *testing.T) {
	meta := &types.Publication{ID: "800-63-4", Date: "2024-08-21", Version: "Rev. 4", Status: "Draft"}

	content := Content(pageHTML, "https://example.com", meta)

	assert.Contains(t, content, "Status: Draft")
}

func TestContent_ErrataIncluded(t *testing.T) {
	meta := &types.Publication{ID: "800-161r1", Date: "2022-05-13", Version: "Rev. 1", Errata: "2024-11-01"}

	content := Content(pageHTML, "https://example.com", meta)

	assert.Contains(t, content, "Errata: 2024-11-01")
}

func TestContent_EmptyHTMLUsesFallback(t *testing.T) {
	meta := &types.Publication{ID: "800-218A"}

	content := Content("", "https://example.com", meta)

	assert.Contains(t, content, "SSDF Community Profile for Generative AI")
	assert.Contains(t, content, "Model provenance tracking")
}

func TestContent_UnknownPublicationFallbackStub(t *testing.T) {
	meta := &types.Publication{ID: "800-999", Title: "Unknown Publication"}

	content := Content("", "https://example.com/pub", meta)

	assert.Contains(t, content, "Unknown Publication")
	assert.Contains(t, content, "https://example.com/pub")
	assert.Contains(t, content, "Content extraction failed")
}

func TestContent_NilMetadata(t *testing.T) {
	content := Content("", "https://example.com/pub", nil)

	assert.Contains(t, content, "NIST Publication")
	assert.Contains(t, content, "https://example.com/pub")
}

func TestCleanText(t *testing.T) {
	input := "# \nReal heading content\n\n\n\nBody text\n##\n"
	cleaned := cleanText(input)

	assert.NotContains(t, cleaned, "##\n")
	assert.Contains(t, cleaned, "Real heading content")
	assert.Contains(t, cleaned, "Body text")
	assert.NotContains(t, cleaned, "\n\n\n")
}
