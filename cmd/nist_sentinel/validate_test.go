package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getBinaryPath(t *testing.T) string {
	binaryName := "nist_sentinel"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/nist_sentinel ./cmd/nist_sentinel'", binaryPath)
	}

	return binaryPath
}

func TestValidateCommand_NoArgsPrintsUsage(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "bare validate prints usage and exits 0")
	assert.Contains(t, string(output), "Usage: nist_sentinel validate <report_file>")
}

func TestValidateCommand_MissingFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate", "/nonexistent/report.md")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read report file")
}

func TestValidateCommand_FailingReport(t *testing.T) {
	binaryPath := getBinaryPath(t)

	reportPath := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, os.WriteFile(reportPath, []byte("an empty report"), 0644))

	cmd := exec.Command(binaryPath, "validate", reportPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "VALIDATION FAILED")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode(), "should exit with code 1 on validation failure")
	}
}

func TestCatalogCommand_ListsPublications(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "catalog")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "SP 800-218A")
	assert.Contains(t, string(output), "https://csrc.nist.gov/pubs/sp/800/53/r5/final")
}
