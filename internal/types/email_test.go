package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailStyleValid(t *testing.T) {
	assert.True(t, StyleProfessional.Valid())
	assert.True(t, StyleCasual.Valid())
	assert.True(t, StyleEnthusiastic.Valid())
	assert.False(t, EmailStyle("").Valid())
	assert.False(t, EmailStyle("poetic").Valid())
}

func TestEmailDraftValidate(t *testing.T) {
	draft := &EmailDraft{Subject: "Subject", Body: "Body", Style: StyleProfessional}
	assert.NoError(t, draft.Validate())

	draft.Subject = ""
	err := draft.Validate()
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestEffectivenessReportValidate(t *testing.T) {
	report := &EffectivenessReport{Score: 7}
	assert.NoError(t, report.Validate())

	report.Score = 11
	assert.Error(t, report.Validate())
}

func TestRequestValidation(t *testing.T) {
	t.Run("ExtractJobRequest", func(t *testing.T) {
		valid := &ExtractJobRequest{URL: "https://example.com/jobs/1"}
		assert.NoError(t, valid.Validate())

		var verrs validator.ValidationErrors
		require.ErrorAs(t, (&ExtractJobRequest{}).Validate(), &verrs)
		require.ErrorAs(t, (&ExtractJobRequest{URL: "not-a-url"}).Validate(), &verrs)
	})

	t.Run("MatchRequest", func(t *testing.T) {
		valid := &MatchRequest{Job: &JobPosting{}, Resume: &Resume{}}
		assert.NoError(t, valid.Validate())

		var verrs validator.ValidationErrors
		require.ErrorAs(t, (&MatchRequest{Job: &JobPosting{}}).Validate(), &verrs)
	})

	t.Run("ComposeRequest", func(t *testing.T) {
		valid := &ComposeRequest{Job: &JobPosting{}, Resume: &Resume{}, Style: StyleCasual}
		assert.NoError(t, valid.Validate())

		noStyle := &ComposeRequest{Job: &JobPosting{}, Resume: &Resume{}}
		assert.NoError(t, noStyle.Validate())

		var verrs validator.ValidationErrors
		bad := &ComposeRequest{Job: &JobPosting{}, Resume: &Resume{}, Style: "poetic"}
		require.ErrorAs(t, bad.Validate(), &verrs)
	})
}
