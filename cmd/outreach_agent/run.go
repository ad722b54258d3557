package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cold-outreach/internal/config"
	"github.com/jonathan/cold-outreach/internal/logger"
	"github.com/jonathan/cold-outreach/internal/pipeline"
	"github.com/jonathan/cold-outreach/internal/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full outreach pipeline",
	Long:  "Fetch a job posting, parse a resume, match skills, generate an outreach email, and write all artifacts to the output directory.",
	RunE:  runRun,
}

var (
	runJobURL     string
	runResumePath string
	runOutDir     string
	runStyle      string
	runVersions   int
	runUseBrowser bool
	runVerbose    bool
	runConfigPath string
)

func init() {
	runCmd.Flags().StringVarP(&runJobURL, "url", "u", "", "URL to fetch the job posting from")
	runCmd.Flags().StringVarP(&runResumePath, "resume", "r", "", "Path to the resume document (.pdf, .docx, .doc)")
	runCmd.Flags().StringVarP(&runOutDir, "out", "o", "", "Output directory for run artifacts")
	runCmd.Flags().StringVarP(&runStyle, "style", "s", "", "Email style: professional, casual, enthusiastic")
	runCmd.Flags().IntVar(&runVersions, "versions", 0, "Number of draft versions to generate (max 3)")
	runCmd.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use a headless browser for JavaScript-rendered pages")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "Path to a JSON config file")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		JobURL:     runJobURL,
		Resume:     runResumePath,
		OutDir:     runOutDir,
		Style:      runStyle,
		Versions:   runVersions,
		UseBrowser: runUseBrowser,
		Verbose:    runVerbose,
	}

	if runConfigPath != "" {
		fileCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = apiKeyFromEnv()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.JobURL == "" {
		return fmt.Errorf("--url is required (or set job_url in the config file)")
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (or set resume in the config file)")
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		JobURL:     cfg.JobURL,
		ResumePath: cfg.Resume,
		OutDir:     cfg.OutDir,
		APIKey:     cfg.APIKey,
		Style:      types.EmailStyle(cfg.Style),
		Versions:   cfg.Versions,
		UseBrowser: cfg.UseBrowser,
		Logger:     log,
		OnProgress: func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Step, event.Message)
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Run %s complete\n", result.RunID)
	fmt.Fprintf(os.Stdout, "Skill match: %.2f%%\n", result.Match.MatchPercentage)
	for i := range result.Drafts {
		fmt.Fprintf(os.Stdout, "Draft %d (%s): %s\n", i+1, result.Drafts[i].Style, result.Drafts[i].Subject)
	}
	if result.RunDir != "" {
		fmt.Fprintf(os.Stdout, "Artifacts: %s\n", result.RunDir)
	}

	return nil
}
