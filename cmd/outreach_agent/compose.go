package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cold-outreach/internal/composer"
	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/types"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Generate a cold outreach email",
	Long:  "Generate a personalized cold outreach email draft from a previously extracted job posting and parsed resume.",
	RunE:  runCompose,
}

var (
	composeJobFile    string
	composeResumeFile string
	composeStyle      string
	composeVersions   int
	composeAnalyze    bool
	composeOut        string
)

func init() {
	composeCmd.Flags().StringVarP(&composeJobFile, "job", "j", "", "Path to the job posting JSON from extract-job (required)")
	composeCmd.Flags().StringVarP(&composeResumeFile, "resume", "r", "", "Path to the resume JSON from parse-resume (required)")
	composeCmd.Flags().StringVarP(&composeStyle, "style", "s", "professional", "Email style: professional, casual, enthusiastic")
	composeCmd.Flags().IntVar(&composeVersions, "versions", 1, "Number of draft versions to generate (max 3, rotating styles)")
	composeCmd.Flags().BoolVar(&composeAnalyze, "analyze", false, "Also score the draft's effectiveness")
	composeCmd.Flags().StringVarP(&composeOut, "out", "o", "", "Output file for the email JSON (default: stdout)")

	_ = composeCmd.MarkFlagRequired("job")
	_ = composeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(composeCmd)
}

// composeOutputDraft is one generated draft with its optional analysis.
type composeOutputDraft struct {
	types.EmailDraft
	Analysis *types.EffectivenessReport `json:"analysis,omitempty"`
}

func runCompose(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	apiKey := apiKeyFromEnv()
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	style := types.EmailStyle(composeStyle)
	if !style.Valid() {
		return fmt.Errorf("unknown style %q: must be professional, casual, or enthusiastic", composeStyle)
	}

	job, err := readJobFile(composeJobFile)
	if err != nil {
		return err
	}
	parsed, err := readResumeFile(composeResumeFile)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	comp := composer.New(client)

	var drafts []types.EmailDraft
	if composeVersions > 1 {
		drafts, err = comp.GenerateVersions(ctx, job, parsed, composeVersions)
		if err != nil {
			return fmt.Errorf("failed to generate email versions: %w", err)
		}
	} else {
		draft, derr := comp.GenerateColdEmail(ctx, job, parsed, style)
		if derr != nil {
			return fmt.Errorf("failed to generate email: %w", derr)
		}
		drafts = []types.EmailDraft{*draft}
	}

	output := make([]composeOutputDraft, 0, len(drafts))
	for i := range drafts {
		entry := composeOutputDraft{EmailDraft: drafts[i]}
		if composeAnalyze {
			report, aerr := comp.AnalyzeEffectiveness(ctx, job, &drafts[i])
			if aerr != nil {
				fmt.Fprintf(os.Stderr, "Warning: effectiveness analysis failed: %v\n", aerr)
			} else {
				entry.Analysis = report
			}
		}
		output = append(output, entry)
		fmt.Fprintf(os.Stderr, "Draft %d (%s): %s\n", i+1, drafts[i].Style, drafts[i].Subject)
	}

	if len(output) == 1 {
		return writeJSONOutput(composeOut, output[0])
	}
	return writeJSONOutput(composeOut, output)
}
