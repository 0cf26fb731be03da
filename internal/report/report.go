// Package report renders validation results for the console and
// produces the machine-readable summary the CLI exit code is derived
// from.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

const (
	// ruleWidth is the width of the separator rules in the console report.
	ruleWidth = 70
	// maxPassedShown caps how many passed checks are listed. Display
	// only; counts are unaffected.
	maxPassedShown = 10
)

var (
	passMark  = color.New(color.FgHiGreen).Sprint("✓")
	warnMark  = color.New(color.FgHiYellow).Sprint("⚠")
	errorMark = color.New(color.FgHiRed).Sprint("✗")
)

// Summary is the machine-readable outcome of a validation run.
type Summary struct {
	Status   types.Status `json:"status"`
	Errors   int          `json:"errors,omitempty"`
	Warnings int          `json:"warnings,omitempty"`
}

// Render writes the full validation report to w and returns the
// summary. Every finding is listed before the verdict so a failure is
// never silent.
//
//nolint:errcheck // console output; write errors are not recoverable
func Render(w io.Writer, result *types.Result) Summary {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "VALIDATION REPORT")
	fmt.Fprintf(w, "%s\n\n", rule)

	if len(result.Passed) > 0 {
		fmt.Fprintf(w, "%s PASSED CHECKS (%d):\n", passMark, len(result.Passed))
		shown := min(len(result.Passed), maxPassedShown)
		for _, f := range result.Passed[:shown] {
			fmt.Fprintf(w, "  %s %s\n", passMark, f.Message)
		}
		if len(result.Passed) > maxPassedShown {
			fmt.Fprintf(w, "  ... and %d more\n", len(result.Passed)-maxPassedShown)
		}
		fmt.Fprintln(w)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "%s WARNINGS (%d):\n", warnMark, len(result.Warnings))
		for _, f := range result.Warnings {
			fmt.Fprintf(w, "  %s %s\n", warnMark, f.Message)
		}
		fmt.Fprintln(w)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "%s ERRORS (%d):\n", errorMark, len(result.Errors))
		for _, f := range result.Errors {
			fmt.Fprintf(w, "  %s %s\n", errorMark, f.Message)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s\n", rule)
	fmt.Fprintf(w, "SUMMARY: %d/%d checks passed (%.1f%%)\n", len(result.Passed), result.Total(), result.PassRate())
	fmt.Fprintf(w, "%s\n\n", rule)

	status := result.Status()
	switch status {
	case types.StatusFailed:
		fmt.Fprintln(w, "VALIDATION FAILED - Please fix errors above")
	case types.StatusPassedWithWarnings:
		fmt.Fprintf(w, "%s VALIDATION PASSED WITH WARNINGS\n", warnMark)
	default:
		fmt.Fprintln(w, "VALIDATION PASSED - All checks successful!")
	}
	fmt.Fprintln(w)

	return Summary{
		Status:   status,
		Errors:   len(result.Errors),
		Warnings: len(result.Warnings),
	}
}
