package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/ahsenmahmood/nist-sentinel/internal/llm"
	"github.com/ahsenmahmood/nist-sentinel/internal/prompts"
	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

const (
	// filterInputLimit caps the combined corpus sent to the model.
	filterInputLimit = 20000
	// filterFallbackLimit caps the raw corpus returned when the model
	// call fails.
	filterFallbackLimit = 8000
)

// FilterForRelevance asks the model to keep only the content relevant
// to software development organizations, preserving all publication
// metadata verbatim. On model failure the truncated raw corpus is
// returned along with the error so the workflow can continue.
func (a *Agent) FilterForRelevance(ctx context.Context, pubs []types.Publication) (string, error) {
	combined := combineContent(pubs)

	prompt := prompts.MustGet("digest.json", "filter_system") + "\n\n" +
		prompts.Format(prompts.MustGet("digest.json", "filter"), map[string]string{
			"Content": truncate(combined, filterInputLimit),
		})

	filtered, err := a.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return truncate(combined, filterFallbackLimit), fmt.Errorf("failed to filter content: %w", err)
	}

	return filtered, nil
}

// combineContent joins per-publication metadata and extracted text into
// one corpus, separated by horizontal rules.
func combineContent(pubs []types.Publication) string {
	sections := make([]string, 0, len(pubs))
	for _, pub := range pubs {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("# %s\n", pub.Title))
		sb.WriteString(fmt.Sprintf("Publication ID: %s\n", pub.ID))
		sb.WriteString(fmt.Sprintf("URL: %s\n", pub.URL))
		status := pub.Status
		if status == "" {
			status = "Final"
		}
		sb.WriteString(fmt.Sprintf("Status: %s\n", status))
		sb.WriteString(fmt.Sprintf("Published: %s\n", pub.Date))
		sb.WriteString(fmt.Sprintf("Version: %s\n", pub.Version))
		if pub.Errata != "" {
			sb.WriteString(fmt.Sprintf("Errata: %s\n", pub.Errata))
		}
		sb.WriteString("\n")
		sb.WriteString(pub.Content)
		sections = append(sections, sb.String())
	}
	return strings.Join(sections, "\n\n---\n\n")
}
