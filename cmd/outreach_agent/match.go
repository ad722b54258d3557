package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cold-outreach/internal/matching"
	"github.com/jonathan/cold-outreach/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match resume skills against a job posting",
	Long:  "Compute the skill overlap and rank the most relevant work experience for a previously extracted job and resume.",
	RunE:  runMatch,
}

var (
	matchJobFile    string
	matchResumeFile string
	matchOut        string
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to the job posting JSON from extract-job (required)")
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to the resume JSON from parse-resume (required)")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Output file for the match JSON (default: stdout)")

	_ = matchCmd.MarkFlagRequired("job")
	_ = matchCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(matchCmd)
}

// matchOutput pairs the skill match with the ranked experience entries.
type matchOutput struct {
	Match              types.SkillMatchResult  `json:"match"`
	RelevantExperience []types.ExperienceEntry `json:"relevant_experience,omitempty"`
}

func runMatch(_ *cobra.Command, _ []string) error {
	job, err := readJobFile(matchJobFile)
	if err != nil {
		return err
	}
	parsed, err := readResumeFile(matchResumeFile)
	if err != nil {
		return err
	}

	match := matching.MatchSkills(job.Skills, parsed.Skills)
	relevant := matching.RankRelevantExperience(job.Requirements, parsed.Experience)

	fmt.Fprintf(os.Stderr, "Skill match: %.2f%% (%d matched, %d missing)\n",
		match.MatchPercentage, len(match.MatchedSkills), len(match.MissingSkills))
	if len(match.MatchedSkills) > 0 {
		fmt.Fprintf(os.Stderr, "Matched: %s\n", strings.Join(match.MatchedSkills, ", "))
	}

	return writeJSONOutput(matchOut, matchOutput{
		Match:              match,
		RelevantExperience: relevant,
	})
}
