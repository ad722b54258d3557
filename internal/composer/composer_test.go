package composer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cold-outreach/internal/llm"
	"github.com/jonathan/cold-outreach/internal/types"
)

// fakeClient scripts model responses per tier for composer tests.
type fakeClient struct {
	contentByTier map[llm.ModelTier]string
	contentErrs   map[llm.ModelTier]error
	jsonResponse  string
	jsonErr       error
	prompts       []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if err := f.contentErrs[tier]; err != nil {
		return "", err
	}
	return f.contentByTier[tier], nil
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.jsonErr != nil {
		return "", f.jsonErr
	}
	return f.jsonResponse, nil
}

func (f *fakeClient) GetModel(tier llm.ModelTier) string { return string(tier) }

func (f *fakeClient) Close() error { return nil }

func testJob() *types.JobPosting {
	return &types.JobPosting{
		Title:        "Backend Engineer",
		Company:      "Initech",
		Description:  "Build backend services",
		Requirements: "Python and Docker experience",
		Skills:       []string{"python", "docker"},
	}
}

func testResume() *types.Resume {
	return &types.Resume{
		Name:   "Jane Smith",
		Skills: []string{"python"},
		Experience: []types.ExperienceEntry{
			{Title: "Python Engineer", Company: "Globex", Period: "2019 - Present", Description: "Built APIs"},
		},
	}
}

func TestGenerateColdEmail(t *testing.T) {
	client := &fakeClient{
		contentByTier: map[llm.ModelTier]string{
			llm.TierStandard: "Dear hiring team, I build backend services.",
			llm.TierLite:     `"Backend Engineer with Python - Jane Smith"`,
		},
	}

	draft, err := New(client).GenerateColdEmail(context.Background(), testJob(), testResume(), types.StyleProfessional)
	require.NoError(t, err)

	assert.Equal(t, "Dear hiring team, I build backend services.", draft.Body)
	assert.Equal(t, "Backend Engineer with Python - Jane Smith", draft.Subject)
	assert.Equal(t, types.StyleProfessional, draft.Style)
	require.NotNil(t, draft.SkillMatch)
	assert.Equal(t, []string{"python"}, draft.SkillMatch.MatchedSkills)
	assert.Equal(t, []string{"docker"}, draft.SkillMatch.MissingSkills)
	require.Len(t, draft.RelevantRoles, 1)
	assert.Equal(t, "Python Engineer", draft.RelevantRoles[0].Title)
	assert.NotEmpty(t, draft.ContextNotes)
}

func TestGenerateColdEmail_EmptyStyleDefaultsToProfessional(t *testing.T) {
	client := &fakeClient{
		contentByTier: map[llm.ModelTier]string{
			llm.TierStandard: "Body text.",
			llm.TierLite:     "Subject",
		},
	}

	draft, err := New(client).GenerateColdEmail(context.Background(), testJob(), testResume(), "")
	require.NoError(t, err)
	assert.Equal(t, types.StyleProfessional, draft.Style)
}

func TestGenerateColdEmail_InvalidStyle(t *testing.T) {
	client := &fakeClient{}

	_, err := New(client).GenerateColdEmail(context.Background(), testJob(), testResume(), "poetic")
	var target *GenerationError
	require.ErrorAs(t, err, &target)
	assert.Empty(t, client.prompts)
}

func TestGenerateColdEmail_BodyFailure(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{
			name: "Model error",
			client: &fakeClient{
				contentErrs: map[llm.ModelTier]error{llm.TierStandard: errors.New("quota exceeded")},
			},
		},
		{
			name: "Empty body",
			client: &fakeClient{
				contentByTier: map[llm.ModelTier]string{llm.TierStandard: "   "},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.client).GenerateColdEmail(context.Background(), testJob(), testResume(), types.StyleProfessional)
			var target *GenerationError
			assert.ErrorAs(t, err, &target)
		})
	}
}

func TestGenerateColdEmail_SubjectFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{
			name: "Subject call fails",
			client: &fakeClient{
				contentByTier: map[llm.ModelTier]string{llm.TierStandard: "Body text."},
				contentErrs:   map[llm.ModelTier]error{llm.TierLite: errors.New("unavailable")},
			},
		},
		{
			name: "Subject is multi-line",
			client: &fakeClient{
				contentByTier: map[llm.ModelTier]string{
					llm.TierStandard: "Body text.",
					llm.TierLite:     "Subject\nwith a second line",
				},
			},
		},
		{
			name: "Subject is empty",
			client: &fakeClient{
				contentByTier: map[llm.ModelTier]string{
					llm.TierStandard: "Body text.",
					llm.TierLite:     "  ",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := New(tt.client).GenerateColdEmail(context.Background(), testJob(), testResume(), types.StyleProfessional)
			require.NoError(t, err)
			assert.Equal(t, "Experienced Backend Engineer - Jane Smith", draft.Subject)
		})
	}
}

func TestValidateDraft(t *testing.T) {
	draft := &types.EmailDraft{
		Subject: "Subject",
		Body:    "Body text.",
		Style:   types.StyleProfessional,
		SkillMatch: &types.SkillMatchResult{
			MatchedSkills:   []string{"python"},
			MissingSkills:   []string{},
			MatchPercentage: 100.0,
		},
	}
	assert.NoError(t, ValidateDraft(draft))

	draft.Subject = ""
	var target *GenerationError
	assert.ErrorAs(t, ValidateDraft(draft), &target)

	draft.Subject = "Subject"
	draft.Style = "poetic"
	assert.ErrorAs(t, ValidateDraft(draft), &target)
}

func TestGenerateVersions(t *testing.T) {
	client := &fakeClient{
		contentByTier: map[llm.ModelTier]string{
			llm.TierStandard: "Body text.",
			llm.TierLite:     "Subject",
		},
	}

	drafts, err := New(client).GenerateVersions(context.Background(), testJob(), testResume(), 2)
	require.NoError(t, err)

	require.Len(t, drafts, 2)
	assert.Equal(t, types.StyleProfessional, drafts[0].Style)
	assert.Equal(t, 1, drafts[0].Version)
	assert.Equal(t, types.StyleCasual, drafts[1].Style)
	assert.Equal(t, 2, drafts[1].Version)
}

func TestGenerateVersions_CapsAtSupportedStyles(t *testing.T) {
	client := &fakeClient{
		contentByTier: map[llm.ModelTier]string{
			llm.TierStandard: "Body text.",
			llm.TierLite:     "Subject",
		},
	}

	drafts, err := New(client).GenerateVersions(context.Background(), testJob(), testResume(), 10)
	require.NoError(t, err)

	require.Len(t, drafts, 3)
	assert.Equal(t, types.StyleEnthusiastic, drafts[2].Style)
	assert.Equal(t, 3, drafts[2].Version)
}

func TestGenerateVersions_AllFail(t *testing.T) {
	client := &fakeClient{
		contentErrs: map[llm.ModelTier]error{llm.TierStandard: errors.New("quota exceeded")},
	}

	_, err := New(client).GenerateVersions(context.Background(), testJob(), testResume(), 3)
	var target *GenerationError
	assert.ErrorAs(t, err, &target)
}

func TestAnalyzeEffectiveness(t *testing.T) {
	client := &fakeClient{
		jsonResponse: "```json\n{\"score\": 8, \"strengths\": [\"clear ask\"], \"weaknesses\": [\"long opening\"], \"suggestions\": [\"shorten paragraph one\"]}\n```",
	}
	draft := &types.EmailDraft{Subject: "Subject", Body: "Body text.", Style: types.StyleProfessional}

	report, err := New(client).AnalyzeEffectiveness(context.Background(), testJob(), draft)
	require.NoError(t, err)

	assert.Equal(t, 8, report.Score)
	assert.Equal(t, []string{"clear ask"}, report.Strengths)
	assert.Equal(t, []string{"long opening"}, report.Weaknesses)
	assert.Equal(t, []string{"shorten paragraph one"}, report.Suggestions)
}

func TestAnalyzeEffectiveness_Failures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{
			name:   "Model error",
			client: &fakeClient{jsonErr: errors.New("unavailable")},
		},
		{
			name:   "Schema violation",
			client: &fakeClient{jsonResponse: `{"score": 0}`},
		},
		{
			name:   "Not JSON at all",
			client: &fakeClient{jsonResponse: "I cannot help with that."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &types.EmailDraft{Subject: "Subject", Body: "Body.", Style: types.StyleProfessional}
			_, err := New(tt.client).AnalyzeEffectiveness(context.Background(), testJob(), draft)
			var target *AnalysisError
			assert.ErrorAs(t, err, &target)
		})
	}
}
