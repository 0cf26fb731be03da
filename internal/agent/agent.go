// Package agent implements the generation steps of the digest workflow:
// filtering the publication corpus for software-development relevance,
// mapping filtered content to NIST controls, and writing the executive
// summary. Model output is treated as untrusted: structured responses
// are schema-checked and reference-filtered, and every step degrades to
// a deterministic fallback instead of aborting the workflow.
package agent

import (
	"github.com/ahsenmahmood/nist-sentinel/internal/llm"
)

// Agent runs the LLM-backed digest steps.
type Agent struct {
	client llm.Client
}

// New creates an Agent backed by the given LLM client.
func New(client llm.Client) *Agent {
	return &Agent{client: client}
}

// truncate limits prompt payloads so combined corpora stay within
// model context budgets.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
