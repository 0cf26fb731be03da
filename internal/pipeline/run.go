// Package pipeline provides the high-level orchestration for the digest generation process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ahsenmahmood/nist-sentinel/internal/agent"
	"github.com/ahsenmahmood/nist-sentinel/internal/catalog"
	"github.com/ahsenmahmood/nist-sentinel/internal/db"
	"github.com/ahsenmahmood/nist-sentinel/internal/extract"
	"github.com/ahsenmahmood/nist-sentinel/internal/fetch"
	"github.com/ahsenmahmood/nist-sentinel/internal/llm"
	"github.com/ahsenmahmood/nist-sentinel/internal/observability"
	"github.com/ahsenmahmood/nist-sentinel/internal/publish"
	"github.com/ahsenmahmood/nist-sentinel/internal/report"
	"github.com/ahsenmahmood/nist-sentinel/internal/types"
	"github.com/ahsenmahmood/nist-sentinel/internal/validation"
)

// fetchConcurrency bounds parallel publication downloads
const fetchConcurrency = 4

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	OutputDir       string
	GitHubRepo      string
	BaseBranch      string
	MaxPublications int
	APIKey          string
	UseBrowser      bool
	Verbose         bool
	SkipPublish     bool
	SkipFetch       bool
	DatabaseURL     string
	OnProgress      ProgressCallback

	// Client overrides the Gemini client; used by tests
	Client llm.Client
}

// RunResult holds the outputs of a completed pipeline run
type RunResult struct {
	SummaryPath string
	PRLocation  string
	Report      report.Summary
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// Run orchestrates the full digest pipeline: catalog selection, content
// fetching, LLM analysis, output generation, publishing, and validation.
// Validation always runs against the final content, and the run result
// carries its verdict even when upstream steps fell back to degraded
// output.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	if opts.OutputDir == "" {
		opts.OutputDir = "outputs"
	}

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	// Step 1: Select publications from the trusted catalog
	fmt.Printf("Step 1/8: Selecting publications from catalog...\n")
	pubs := catalog.All()
	if opts.MaxPublications > 0 && len(pubs) > opts.MaxPublications {
		pubs = pubs[:opts.MaxPublications]
	}
	if opts.Verbose {
		printer.PrintPublications(pubs)
	}
	emitProgress(&opts, db.StepPublications, db.CategoryCatalog,
		fmt.Sprintf("Selected %d publications", len(pubs)), nil)

	if database != nil {
		var err error
		runID, err = database.CreateRun(ctx, len(pubs))
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
		} else if opts.Verbose {
			fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
		}
	}

	// Step 2: Fetch and extract publication content concurrently
	fmt.Printf("Step 2/8: Fetching publication content...\n")
	fetchContent(ctx, &opts, pubs)
	if opts.Verbose {
		printer.PrintFetchResults(pubs)
	}
	emitProgress(&opts, db.StepPublications, db.CategoryContent, "Fetched publication content", nil)

	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepPublications, db.CategoryContent, pubs)
	}

	// Initialize the LLM client
	client := opts.Client
	if client == nil {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}
	ag := agent.New(client)

	// Step 3: Filter content for developer relevance
	fmt.Printf("Step 3/8: Filtering content for relevance...\n")
	filtered, err := ag.FilterForRelevance(ctx, pubs)
	if err != nil {
		fmt.Printf("Warning: Relevance filtering degraded: %v\n", err)
	}
	if database != nil && runID != uuid.Nil {
		_ = database.SaveTextArtifact(ctx, runID, db.StepFilteredContent, db.CategoryAnalysis, filtered)
	}
	emitProgress(&opts, db.StepFilteredContent, db.CategoryAnalysis, "Filtered content for relevance", nil)

	// Step 4: Map content to compliance controls
	fmt.Printf("Step 4/8: Mapping updates to controls...\n")
	mappings, err := ag.MapToControls(ctx, filtered)
	if err != nil {
		fmt.Printf("Warning: Control mapping degraded: %v\n", err)
	}
	if opts.Verbose {
		printer.PrintControlMappings(mappings)
	}
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepControlMappings, db.CategoryAnalysis, mappings)
	}
	emitProgress(&opts, db.StepControlMappings, db.CategoryAnalysis,
		fmt.Sprintf("Mapped %d sections to controls", len(mappings.Mappings)), mappings)

	// Step 5: Generate the compliance summary
	fmt.Printf("Step 5/8: Generating compliance summary...\n")
	summary, err := ag.GenerateSummary(ctx, filtered, mappings, pubs)
	if err != nil {
		fmt.Printf("Warning: Summary generation degraded, using fallback: %v\n", err)
	}
	if database != nil && runID != uuid.Nil {
		_ = database.SaveTextArtifact(ctx, runID, db.StepSummary, db.CategoryAnalysis, summary)
	}
	emitProgress(&opts, db.StepSummary, db.CategoryAnalysis, "Generated compliance summary", nil)

	// Step 6: Write the digest to the output directory
	fmt.Printf("Step 6/8: Writing digest file...\n")
	filename := fmt.Sprintf("nist-summary-%s.md", time.Now().Format("2006-01-02-150405"))
	summaryPath, err := writeSummary(opts.OutputDir, filename, summary)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Digest written to: %s\n", summaryPath)

	// Step 7: Publish as a pull request unless disabled
	prLocation := ""
	if !opts.SkipPublish && opts.GitHubRepo != "" {
		fmt.Printf("Step 7/8: Publishing digest to %s...\n", opts.GitHubRepo)
		pubOpts := []publish.Option{publish.WithOutputDir(opts.OutputDir)}
		if opts.BaseBranch != "" {
			pubOpts = append(pubOpts, publish.WithBaseBranch(opts.BaseBranch))
		}
		publisher, pubErr := publish.New(opts.GitHubRepo, pubOpts...)
		if pubErr != nil {
			fmt.Printf("Warning: Publisher misconfigured: %v\n", pubErr)
		} else {
			prLocation, pubErr = publisher.CreatePullRequest(summary, filename)
			if pubErr != nil {
				fmt.Printf("Warning: %v\n", pubErr)
			} else {
				fmt.Printf("Pull request created: %s\n", prLocation)
			}
		}
	} else {
		fmt.Printf("Step 7/8: Publishing skipped.\n")
	}

	// Step 8: Validate the generated digest and render the report
	fmt.Printf("Step 8/8: Validating digest...\n")
	result := validation.Run(summary, catalog.Ref{})
	if opts.Verbose {
		printer.PrintValidationOutcome(result)
	}
	reportSummary := report.Render(os.Stdout, result)

	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepValidation, db.CategoryValidation, result)
		_ = database.CompleteRun(ctx, runID, "completed", string(reportSummary.Status), summaryPath)
	}
	emitProgress(&opts, db.StepValidation, db.CategoryValidation,
		fmt.Sprintf("Validation verdict: %s", reportSummary.Status), nil)

	return &RunResult{
		SummaryPath: summaryPath,
		PRLocation:  prLocation,
		Report:      reportSummary,
	}, nil
}

// fetchContent downloads and extracts text for each publication in
// place. Failures never abort the run; the extractor substitutes known
// fallback content so downstream analysis always has material.
func fetchContent(ctx context.Context, opts *RunOptions, pubs []types.Publication) {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i := range pubs {
		g.Go(func() error {
			pub := &pubs[i]

			var html string
			if !opts.SkipFetch {
				result, err := fetch.URL(gCtx, pub.URL, nil)
				if err != nil {
					if opts.Verbose {
						fmt.Printf("[VERBOSE] Fetch failed for %s: %v\n", pub.ID, err)
					}
				} else {
					html = result.HTML
				}

				if opts.UseBrowser && needsBrowser(html) {
					rendered, err := fetch.BrowserSimple(gCtx, pub.URL, opts.Verbose)
					if err == nil {
						html = rendered
					} else if opts.Verbose {
						fmt.Printf("[VERBOSE] Browser fetch failed for %s: %v\n", pub.ID, err)
					}
				}
			}

			pub.Content = extract.Content(html, pub.URL, pub)
			return nil
		})
	}

	// Errors are handled per-publication; Wait only observes ctx cancellation.
	_ = g.Wait()
}

func needsBrowser(html string) bool {
	if html == "" {
		return true
	}
	text, err := fetch.ExtractMainText(html, fetch.PublicationSelectors())
	if err != nil {
		return true
	}
	return fetch.ShouldUseBrowser(text)
}

func writeSummary(dir, filename, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write digest: %w", err)
	}
	return path, nil
}
