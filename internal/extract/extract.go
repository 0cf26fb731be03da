// Package extract turns raw publication page markup into normalized
// text with a metadata header block. Extraction never fails hard: when
// markup is missing or unusable, known publications fall back to a
// bundled summary so downstream generation always has something to
// work with.
package extract

import (
	"fmt"
	"strings"

	"github.com/ahsenmahmood/nist-sentinel/internal/fetch"
	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

// Content extracts the main text from publication page HTML and
// prefixes it with a metadata header built from the trusted record.
func Content(html, url string, meta *types.Publication) string {
	if strings.TrimSpace(html) == "" {
		return fallbackContent(url, meta)
	}

	text, err := fetch.ExtractMainText(html, fetch.PublicationSelectors())
	if err != nil || strings.TrimSpace(text) == "" {
		return fallbackContent(url, meta)
	}

	return metadataHeader(url, meta) + cleanText(text)
}

// metadataHeader renders the trusted metadata block that precedes the
// extracted content. Status is only surfaced for drafts.
func metadataHeader(url string, meta *types.Publication) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Source: %s\n\n", url))

	if meta == nil {
		return sb.String()
	}

	if meta.IsDraft() {
		sb.WriteString(fmt.Sprintf("Status: %s\n", meta.Status))
	}
	if meta.Date != "" {
		sb.WriteString(fmt.Sprintf("Published: %s\n", meta.Date))
	}
	if meta.Version != "" {
		sb.WriteString(fmt.Sprintf("Version: %s\n", meta.Version))
	}
	if meta.Errata != "" {
		sb.WriteString(fmt.Sprintf("Errata: %s\n", meta.Errata))
	}
	sb.WriteString("\n")

	return sb.String()
}

// cleanText collapses blank-line runs and drops bare heading markers
// left behind by stripped markup.
func cleanText(text string) string {
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}

	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && len(trimmed) <= 3 {
			continue
		}
		if trimmed != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// fallbackContent returns bundled text for publications whose pages
// could not be fetched or parsed, or a stub pointing at the URL.
func fallbackContent(url string, meta *types.Publication) string {
	if meta != nil {
		for key, content := range fallbacks {
			if strings.Contains(meta.ID, key) {
				return content
			}
		}
	}

	title := "NIST Publication"
	if meta != nil && meta.Title != "" {
		title = meta.Title
	}
	return fmt.Sprintf("# %s\n\nURL: %s\n\nContent extraction failed. Please visit the URL directly.", title, url)
}

var fallbacks = map[string]string{
	"800-218A": `# NIST SP 800-218A: SSDF Community Profile for Generative AI

Published: July 26, 2024

## Overview
Extension of SSDF specifically addressing security practices for developing and deploying generative AI and foundation models.

## Key Additions for AI/ML Systems

### AI-Specific Security Practices
- Model provenance tracking
- Training data security and validation
- Model bias and fairness testing
- Adversarial robustness testing
- Output validation and monitoring

### Supply Chain Considerations
- Track model dependencies and training data sources
- Implement SBOM for AI models
- Validate third-party model components
- Monitor for model drift and degradation

### Deployment and Operations
- Implement guardrails for model outputs
- Monitor for adversarial inputs
- Log and audit model decisions
- Implement rollback capabilities

## Impact on Development Organizations
Organizations using or developing AI/ML systems must extend their SSDF implementation to cover these AI-specific security practices.`,

	"800-161r1": `# NIST SP 800-161 Rev. 1: Cybersecurity Supply Chain Risk Management

Published: May 13, 2022
Errata: November 1, 2024

## Overview
Comprehensive guidance for managing cybersecurity risks throughout the supply chain.

## Key Components

### Software Bill of Materials (SBOM)
- Generate and maintain SBOMs for all software
- Track component dependencies and versions
- Monitor for vulnerabilities in dependencies
- Share SBOMs with stakeholders

### Supply Chain Risk Assessment
- Identify critical suppliers and dependencies
- Assess supplier security practices
- Implement multi-source strategies
- Continuous monitoring

### Software Development Focus
- Generate SBOMs during build process
- Scan third-party components before integration
- Maintain inventory of software dependencies
- Implement automated dependency updates`,
}
