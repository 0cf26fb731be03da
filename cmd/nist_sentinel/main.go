// Package main provides the entry point for the NIST Sentinel compliance digest CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nist_sentinel",
	Short: "NIST SP 800 compliance digest generator",
	Long:  "NIST Sentinel tracks NIST SP 800 series publications, generates developer-focused compliance digests with control mappings, and validates every digest against the trusted publication catalog before publishing.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
