package types

import "github.com/go-playground/validator/v10"

// EmailStyle selects the tone of a generated outreach email.
type EmailStyle string

// Supported email styles.
const (
	StyleProfessional EmailStyle = "professional"
	StyleCasual       EmailStyle = "casual"
	StyleEnthusiastic EmailStyle = "enthusiastic"
)

// Valid reports whether the style is one of the supported values.
func (s EmailStyle) Valid() bool {
	switch s {
	case StyleProfessional, StyleCasual, StyleEnthusiastic:
		return true
	}
	return false
}

// EmailDraft is a generated outreach email together with the match context
// that drove its generation.
type EmailDraft struct {
	Subject       string            `json:"subject" validate:"required,min=1"`
	Body          string            `json:"body" validate:"required,min=1"`
	Style         EmailStyle        `json:"style"`
	Version       int               `json:"version,omitempty"`
	SkillMatch    *SkillMatchResult `json:"skill_match,omitempty"`
	RelevantRoles []ExperienceEntry `json:"relevant_roles,omitempty"`
	ContextNotes  string            `json:"context_notes,omitempty"`
}

// Validate validates the EmailDraft using the validator.
func (d *EmailDraft) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// EffectivenessReport is an LLM critique of a draft before it is sent.
type EffectivenessReport struct {
	Score       int      `json:"score" validate:"required,min=1,max=10"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// Validate validates the EffectivenessReport using the validator.
func (r *EffectivenessReport) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
