package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cold-outreach/internal/fetch"
	"github.com/jonathan/cold-outreach/internal/jobposting"
)

var extractJobCmd = &cobra.Command{
	Use:   "extract-job",
	Short: "Extract a structured job posting from a URL",
	Long:  "Fetch a job posting page, extract its structured fields with selector heuristics, and output the posting as JSON.",
	RunE:  runExtractJob,
}

var (
	extractURL        string
	extractUseBrowser bool
	extractOut        string
)

func init() {
	extractJobCmd.Flags().StringVarP(&extractURL, "url", "u", "", "URL to fetch the job posting from (required)")
	extractJobCmd.Flags().BoolVar(&extractUseBrowser, "use-browser", false, "Use a headless browser for JavaScript-rendered pages")
	extractJobCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Output file for the job JSON (default: stdout)")

	_ = extractJobCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(extractJobCmd)
}

func runExtractJob(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if !fetch.ValidateURL(extractURL) {
		return fmt.Errorf("invalid URL: %s", extractURL)
	}

	var markup string
	result, err := fetch.URL(ctx, extractURL, fetch.DefaultOptions())
	switch {
	case err != nil && extractUseBrowser:
		markup, err = fetch.BrowserSimple(ctx, extractURL, false)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to fetch job posting: %w", err)
	case extractUseBrowser && fetch.ShouldUseBrowser(result.HTML):
		markup, err = fetch.BrowserSimple(ctx, extractURL, false)
		if err != nil {
			markup = result.HTML
		}
	default:
		markup = result.HTML
	}

	job, err := jobposting.Parse(markup, extractURL)
	if err != nil {
		return fmt.Errorf("failed to extract job posting: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", jobposting.Summary(job))

	return writeJSONOutput(extractOut, job)
}
