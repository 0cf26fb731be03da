package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/ahsenmahmood/nist-sentinel/internal/catalog"
)

var catalogCommand = &cobra.Command{
	Use:   "catalog",
	Short: "Print the trusted publication catalog",
	Long:  "Lists every tracked NIST SP 800 series publication with its verified date, version, and canonical URL, most recent first.",
	Run:   runCatalogCmd,
}

func init() {
	rootCmd.AddCommand(catalogCommand)
}

func runCatalogCmd(_ *cobra.Command, _ []string) {
	green := color.New(color.FgHiGreen).SprintFunc()
	yellow := color.New(color.FgHiYellow).SprintFunc()

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header([]string{"ID", "DATE", "VERSION", "TITLE", "URL"})

	for _, pub := range catalog.All() {
		version := pub.Version
		if pub.IsDraft() {
			version = yellow(version)
		} else {
			version = green(version)
		}
		_ = table.Append([]string{"SP " + pub.ID, pub.Date, version, pub.Title, pub.URL})
	}

	_ = table.Render()
}
