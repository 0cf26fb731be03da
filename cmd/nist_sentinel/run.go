package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahsenmahmood/nist-sentinel/internal/config"
	"github.com/ahsenmahmood/nist-sentinel/internal/pipeline"
	"github.com/ahsenmahmood/nist-sentinel/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full digest pipeline end-to-end",
	Long: `Orchestrates the entire digest generation process: catalog -> fetch -> filter -> control mapping -> summary -> publish -> validation.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runOutputDir   string
	runRepo        string
	runBaseBranch  string
	runMaxPubs     int
	runAPIKey      string
	runUseBrowser  bool
	runVerbose     bool
	runSkipPublish bool
	runSkipFetch   bool
	runDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runOutputDir, "output-dir", "o", "", "Directory for generated digest files")
	runCommand.Flags().StringVarP(&runRepo, "repo", "r", "", "GitHub repository for publishing, in owner/name form")
	runCommand.Flags().StringVar(&runBaseBranch, "base-branch", "", "Base branch for digest pull requests")
	runCommand.Flags().IntVar(&runMaxPubs, "max-publications", 0, "Cap on publications processed per run (0 = all)")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCommand.Flags().BoolVar(&runSkipPublish, "skip-publish", false, "Generate the digest locally without opening a PR")
	runCommand.Flags().BoolVar(&runSkipFetch, "skip-fetch", false, "Use catalog fallback content instead of live pages")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("repo") {
		cfg.GitHubRepo = runRepo
	}
	if cmd.Flags().Changed("base-branch") {
		cfg.BaseBranch = runBaseBranch
	}
	if cmd.Flags().Changed("max-publications") {
		cfg.MaxPublications = runMaxPubs
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("skip-publish") {
		cfg.SkipPublish = runSkipPublish
	}
	if cmd.Flags().Changed("skip-fetch") {
		cfg.SkipFetch = runSkipFetch
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		OutputDir:  "outputs",
		BaseBranch: "main",
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Environment fallbacks
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	if cfg.GitHubRepo == "" {
		cfg.GitHubRepo = os.Getenv("GITHUB_REPO")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.GitHubRepo == "" && !cfg.SkipPublish {
		fmt.Println("No GitHub repository configured; digest will only be written locally.")
		cfg.SkipPublish = true
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		OutputDir:       cfg.OutputDir,
		GitHubRepo:      cfg.GitHubRepo,
		BaseBranch:      cfg.BaseBranch,
		MaxPublications: cfg.MaxPublications,
		APIKey:          cfg.APIKey,
		UseBrowser:      cfg.UseBrowser,
		Verbose:         cfg.Verbose,
		SkipPublish:     cfg.SkipPublish,
		SkipFetch:       cfg.SkipFetch,
		DatabaseURL:     cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	if result.Report.Status == types.StatusFailed {
		return fmt.Errorf("digest validation failed with %d errors", result.Report.Errors)
	}
	return nil
}
