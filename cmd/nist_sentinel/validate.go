package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahsenmahmood/nist-sentinel/internal/catalog"
	"github.com/ahsenmahmood/nist-sentinel/internal/report"
	"github.com/ahsenmahmood/nist-sentinel/internal/types"
	"github.com/ahsenmahmood/nist-sentinel/internal/validation"
)

var validateCommand = &cobra.Command{
	Use:   "validate [report-file]",
	Short: "Validate an existing digest report against the publication catalog",
	Long: `Checks a generated digest report for required sections, correct publication
dates, invalid references, URL formats, duplicate tables, and key
publication coverage.

Exits 0 when the report passes (with or without warnings) and 1 when it
fails validation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidateCmd,
}

func init() {
	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: nist_sentinel validate <report_file>")
		fmt.Println("Example: nist_sentinel validate outputs/nist-summary-2025-03-14-092653.md")
		return nil
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read report file: %w", err)
	}

	result := validation.Run(string(content), catalog.Ref{})
	summary := report.Render(os.Stdout, result)

	if summary.Status == types.StatusFailed {
		// Suppress cobra's usage text; the report already explains the failure
		cmd.SilenceUsage = true
		return fmt.Errorf("validation failed with %d errors", summary.Errors)
	}
	return nil
}
