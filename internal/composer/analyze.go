package composer

import (
	"context"
	"encoding/json"

	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/prompts"
	"github.com/jonathan/cold-outreach/internal/schemas"
	"github.com/jonathan/cold-outreach/internal/types"
)

// AnalyzeEffectiveness asks the model to critique a draft against the job
// posting and returns the structured report.
func (c *Composer) AnalyzeEffectiveness(ctx context.Context, job *types.JobPosting, draft *types.EmailDraft) (*types.EffectivenessReport, error) {
	template := prompts.MustGet("composer.json", "effectiveness_analysis")
	prompt := prompts.Format(template, map[string]string{
		"JobContext": FormatJobContent(job),
		"Subject":    draft.Subject,
		"Body":       draft.Body,
	})

	raw, err := c.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &AnalysisError{Message: "failed to generate analysis", Cause: err}
	}

	cleaned := llm.CleanJSONBlock(raw)
	if err := schemas.Validate(schemas.EffectivenessReport, []byte(cleaned)); err != nil {
		return nil, &AnalysisError{Message: "analysis does not match schema", Cause: err}
	}

	var report types.EffectivenessReport
	if err := json.Unmarshal([]byte(cleaned), &report); err != nil {
		return nil, &AnalysisError{Message: "failed to parse analysis response", Cause: err}
	}

	return &report, nil
}
