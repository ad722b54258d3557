package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cold-outreach/internal/resume"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume document into structured JSON",
	Long:  "Extract text from a PDF or Word resume, segment it into sections, and output the structured resume as JSON.",
	RunE:  runParseResume,
}

var (
	resumeFile string
	resumeOut  string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&resumeFile, "file", "f", "", "Path to the resume document (.pdf, .docx, .doc) (required)")
	parseResumeCmd.Flags().StringVarP(&resumeOut, "out", "o", "", "Output file for the resume JSON (default: stdout)")

	_ = parseResumeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(resumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	parsed, err := resume.ParseDocument(filepath.Base(resumeFile), data)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%s\n", resume.Summary(parsed))

	return writeJSONOutput(resumeOut, parsed)
}
