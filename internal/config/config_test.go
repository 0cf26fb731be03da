package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"github_repo": "acme/compliance",
		"output_dir": "outputs",
		"max_publications": 5,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "acme/compliance", cfg.GitHubRepo)
	assert.Equal(t, "outputs", cfg.OutputDir)
	assert.Equal(t, 5, cfg.MaxPublications)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		MaxPublications: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_publications")
}

func TestValidate_BadRepoForm(t *testing.T) {
	cfg := &Config{
		GitHubRepo: "compliance",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "owner/name")
}

func TestValidate_OutputDirIsFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

	cfg := &Config{OutputDir: tmpFile}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		GitHubRepo:      "acme/compliance",
		OutputDir:       t.TempDir(),
		MaxPublications: 10,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		OutputDir:       "outputs",
		GitHubRepo:      "acme/compliance",
		BaseBranch:      "main",
		MaxPublications: 10,
	}

	partial := Config{
		GitHubRepo: "acme/security-digests",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "acme/security-digests", merged.GitHubRepo)

	// Default values should fill in empty fields
	assert.Equal(t, "outputs", merged.OutputDir)
	assert.Equal(t, "main", merged.BaseBranch)
	assert.Equal(t, 10, merged.MaxPublications)
}

func TestMergeWithDefaults_BoolsNotMerged(t *testing.T) {
	defaults := Config{Verbose: true, UseBrowser: true}
	partial := Config{}

	merged := partial.MergeWithDefaults(defaults)

	assert.False(t, merged.Verbose)
	assert.False(t, merged.UseBrowser)
}
