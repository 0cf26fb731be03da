// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPublications outputs the catalog entries selected for this run.
func (p *Printer) PrintPublications(pubs []types.Publication) {
	if len(pubs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tracking %d publications:\n\n", len(pubs)))

	count := min(len(pubs), maxItemsToShow)
	for i := 0; i < count; i++ {
		pub := pubs[i]
		sb.WriteString(fmt.Sprintf("• SP %s (%s)\n", pub.ID, pub.Date))
		title := pub.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", title))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(pubs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more publications", len(pubs)-maxItemsToShow))
	}

	p.printBox("TRACKED PUBLICATIONS", sb.String())
}

// PrintFetchResults outputs per-publication fetch outcomes.
func (p *Printer) PrintFetchResults(pubs []types.Publication) {
	if len(pubs) == 0 {
		return
	}

	var sb strings.Builder
	fetched := 0
	for _, pub := range pubs {
		if len(pub.Content) > 0 {
			fetched++
		}
	}
	sb.WriteString(fmt.Sprintf("Fetched content for %d/%d publications:\n\n", fetched, len(pubs)))

	count := min(len(pubs), maxItemsToShow)
	for i := 0; i < count; i++ {
		pub := pubs[i]
		mark := "✓"
		if len(pub.Content) == 0 {
			mark = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s SP %s (%d chars)\n", mark, pub.ID, len(pub.Content)))
	}

	if len(pubs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more publications", len(pubs)-maxItemsToShow))
	}

	p.printBox("FETCH RESULTS", sb.String())
}

// PrintControlMappings outputs the mapped sections with their control counts.
func (p *Printer) PrintControlMappings(mappings *types.ControlMappings) {
	if mappings == nil || len(mappings.Mappings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mapped %d sections to controls:\n\n", len(mappings.Mappings)))

	count := min(len(mappings.Mappings), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := mappings.Mappings[i]
		section := m.Section
		if len(section) > 45 {
			section = section[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", section))
		controls := len(m.Controls.SP80053) + len(m.Controls.SP800171) + len(m.Controls.SSDF)
		sb.WriteString(fmt.Sprintf("  %d controls", controls))
		if m.PublicationID != "" {
			sb.WriteString(fmt.Sprintf(" (SP %s)", m.PublicationID))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(mappings.Mappings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more sections", len(mappings.Mappings)-maxItemsToShow))
	}

	p.printBox("CONTROL MAPPINGS", sb.String())
}

// PrintValidationOutcome outputs the validation bucket counts and verdict.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationOutcome(result *types.Result) {
	if result == nil {
		return
	}

	if len(result.Errors) == 0 && len(result.Warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL VALIDATION CHECKS PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Passed:   %d\n", len(result.Passed)))
	sb.WriteString(fmt.Sprintf("Warnings: %d\n", len(result.Warnings)))
	sb.WriteString(fmt.Sprintf("Errors:   %d\n\n", len(result.Errors)))

	issues := append(append([]types.Finding{}, result.Errors...), result.Warnings...)
	count := min(len(issues), maxItemsToShow)
	for i := 0; i < count; i++ {
		msg := issues[i].Message
		if len(msg) > 45 {
			msg = msg[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", msg))
	}
	if len(issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more issues\n", len(issues)-maxItemsToShow))
	}

	p.printBox("VALIDATION ISSUES", strings.TrimSuffix(sb.String(), "\n"))
}
