package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cold-outreach/internal/types"
)

// writeJSONOutput writes v as indented JSON to path, or to stdout when path
// is empty.
func writeJSONOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if path == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// readJobFile loads a job posting artifact produced by extract-job.
func readJobFile(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	return &job, nil
}

// readResumeFile loads a resume artifact produced by parse-resume.
func readResumeFile(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	var r types.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse resume file %s: %w", path, err)
	}
	return &r, nil
}

// apiKeyFromEnv returns the Gemini API key from the environment.
func apiKeyFromEnv() string {
	return os.Getenv("GEMINI_API_KEY")
}
