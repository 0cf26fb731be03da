package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahsenmahmood/nist-sentinel/internal/llm"
	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

// stubClient satisfies llm.Client without network access.
type stubClient struct {
	content string
	json    string
}

func (s *stubClient) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return s.content, nil
}

func (s *stubClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return s.json, nil
}

func (s *stubClient) GetModel(llm.ModelTier) string { return "stub" }
func (s *stubClient) Close() error                  { return nil }

func TestRun_OfflineEndToEnd(t *testing.T) {
	dir := t.TempDir()
	client := &stubClient{
		content: "## Executive Summary\nNothing noteworthy this cycle.",
		json:    `{"mappings": []}`,
	}

	var events []ProgressEvent
	opts := RunOptions{
		OutputDir:       dir,
		MaxPublications: 3,
		SkipFetch:       true,
		SkipPublish:     true,
		Client:          client,
		OnProgress:      func(e ProgressEvent) { events = append(events, e) },
	}

	result, err := Run(context.Background(), opts)

	require.NoError(t, err)
	require.NotNil(t, result)

	// The digest file landed in the output directory with the generated content
	data, readErr := os.ReadFile(result.SummaryPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "Executive Summary")
	assert.Equal(t, dir, filepath.Dir(result.SummaryPath))
	assert.Contains(t, filepath.Base(result.SummaryPath), "nist-summary-")

	// Nothing was published
	assert.Empty(t, result.PRLocation)

	// A minimal stub report is missing required sections
	assert.Equal(t, types.StatusFailed, result.Report.Status)
	assert.Greater(t, result.Report.Errors, 0)

	// Progress events were emitted for every stage
	steps := make(map[string]bool)
	for _, e := range events {
		steps[e.Step] = true
	}
	assert.True(t, steps["publications"])
	assert.True(t, steps["filtered_content"])
	assert.True(t, steps["control_mappings"])
	assert.True(t, steps["summary"])
	assert.True(t, steps["validation"])
}

func TestRun_MaxPublicationsCapsCatalog(t *testing.T) {
	client := &stubClient{content: "x", json: `{"mappings": []}`}

	var selected string
	opts := RunOptions{
		OutputDir:       t.TempDir(),
		MaxPublications: 2,
		SkipFetch:       true,
		SkipPublish:     true,
		Client:          client,
		OnProgress: func(e ProgressEvent) {
			if e.Step == "publications" && selected == "" {
				selected = e.Message
			}
		},
	}

	_, err := Run(context.Background(), opts)

	require.NoError(t, err)
	assert.Equal(t, "Selected 2 publications", selected)
}

func TestWriteSummary_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "outputs")

	path, err := writeSummary(dir, "digest.md", "content")

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestNeedsBrowser(t *testing.T) {
	assert.True(t, needsBrowser(""))
	assert.True(t, needsBrowser("<html><body><main>short</main></body></html>"))
}
