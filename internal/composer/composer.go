// Package composer generates cold outreach email drafts from a job posting
// and a parsed resume, grounded in their skill match.
package composer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/matching"
	"github.com/jonathan/cold-outreach/internal/prompts"
	"github.com/jonathan/cold-outreach/internal/schemas"
	"github.com/jonathan/cold-outreach/internal/types"
)

// maxSubjectSkills caps the matched skills surfaced in the subject prompt.
const maxSubjectSkills = 3

// versionStyles is the style rotation used when generating multiple versions.
var versionStyles = []types.EmailStyle{
	types.StyleProfessional,
	types.StyleCasual,
	types.StyleEnthusiastic,
}

// Composer generates email drafts using an LLM client.
type Composer struct {
	client llm.Client
}

// New creates a Composer bound to the given LLM client.
func New(client llm.Client) *Composer {
	return &Composer{client: client}
}

// GenerateColdEmail produces a single email draft in the requested style.
// An empty style defaults to professional.
func (c *Composer) GenerateColdEmail(ctx context.Context, job *types.JobPosting, r *types.Resume, style types.EmailStyle) (*types.EmailDraft, error) {
	if style == "" {
		style = types.StyleProfessional
	}
	if !style.Valid() {
		return nil, &GenerationError{Message: fmt.Sprintf("unsupported email style %q", style)}
	}

	match := matching.MatchSkills(job.Skills, r.Skills)
	relevant := matching.RankRelevantExperience(relevanceText(job), r.Experience)

	body, err := c.generateBody(ctx, job, r, match, relevant, style)
	if err != nil {
		return nil, err
	}

	subject := c.generateSubject(ctx, job, r, match)

	draft := &types.EmailDraft{
		Subject:       subject,
		Body:          body,
		Style:         style,
		SkillMatch:    &match,
		RelevantRoles: relevant,
		ContextNotes:  matching.ContextSummary(job, r),
	}

	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// ValidateDraft checks a draft against the embedded email draft schema.
func ValidateDraft(draft *types.EmailDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return &GenerationError{Message: "failed to marshal draft", Cause: err}
	}
	if err := schemas.Validate(schemas.EmailDraft, data); err != nil {
		return &GenerationError{Message: "generated draft is invalid", Cause: err}
	}
	return nil
}

// GenerateVersions produces up to count drafts, rotating through the
// supported styles. Failed versions are skipped; an error is returned only
// when every version fails.
func (c *Composer) GenerateVersions(ctx context.Context, job *types.JobPosting, r *types.Resume, count int) ([]types.EmailDraft, error) {
	if count > len(versionStyles) {
		count = len(versionStyles)
	}

	drafts := make([]types.EmailDraft, 0, count)
	var lastErr error

	for i := 0; i < count; i++ {
		draft, err := c.GenerateColdEmail(ctx, job, r, versionStyles[i])
		if err != nil {
			lastErr = err
			continue
		}
		draft.Version = i + 1
		drafts = append(drafts, *draft)
	}

	if len(drafts) == 0 && lastErr != nil {
		return nil, &GenerationError{Message: "all versions failed", Cause: lastErr}
	}

	return drafts, nil
}

func (c *Composer) generateBody(ctx context.Context, job *types.JobPosting, r *types.Resume, match types.SkillMatchResult, relevant []types.ExperienceEntry, style types.EmailStyle) (string, error) {
	template := prompts.MustGet("composer.json", "email_body")
	prompt := prompts.Format(template, map[string]string{
		"StyleGuide":       StyleGuide(style),
		"JobContext":       FormatJobContent(job),
		"CandidateContext": FormatResumeContent(r),
		"MatchContext":     FormatMatchContext(match, relevant),
	})

	body, err := c.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", &GenerationError{Message: "failed to generate email body", Cause: err}
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return "", &GenerationError{Message: "model returned an empty email body"}
	}

	return body, nil
}

// generateSubject asks the model for a subject line and falls back to a
// deterministic one when the call fails or returns nothing usable.
func (c *Composer) generateSubject(ctx context.Context, job *types.JobPosting, r *types.Resume, match types.SkillMatchResult) string {
	topSkills := match.MatchedSkills
	if len(topSkills) > maxSubjectSkills {
		topSkills = topSkills[:maxSubjectSkills]
	}

	template := prompts.MustGet("composer.json", "email_subject")
	prompt := prompts.Format(template, map[string]string{
		"JobTitle":      job.Title,
		"Company":       job.Company,
		"CandidateName": r.Name,
		"TopSkills":     strings.Join(topSkills, ", "),
	})

	subject, err := c.client.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		return FallbackSubject(job, r)
	}

	subject = strings.TrimSpace(strings.Trim(strings.TrimSpace(subject), `"`))
	if subject == "" || strings.Contains(subject, "\n") {
		return FallbackSubject(job, r)
	}

	return subject
}

// FallbackSubject builds the deterministic subject line used when the model
// cannot produce one.
func FallbackSubject(job *types.JobPosting, r *types.Resume) string {
	title := job.Title
	if title == "" || title == types.TitleNotFound {
		title = "Professional"
	}
	name := r.Name
	if name == "" || name == types.NameNotFound {
		name = "Candidate"
	}
	return fmt.Sprintf("Experienced %s - %s", title, name)
}

// relevanceText picks the text used to rank experience entries, preferring
// explicit requirements over the description.
func relevanceText(job *types.JobPosting) string {
	if job.Requirements != "" && job.Requirements != types.RequirementsNotFound {
		return job.Requirements
	}
	if job.Description != "" && job.Description != types.DescriptionNotFound {
		return job.Description
	}
	return ""
}
