package types

import "github.com/go-playground/validator/v10"

// ExtractJobRequest is the request body for POST /extract-job.
type ExtractJobRequest struct {
	URL        string `json:"url" validate:"required,url"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// MatchRequest is the request body for POST /match.
type MatchRequest struct {
	Job    *JobPosting `json:"job" validate:"required"`
	Resume *Resume     `json:"resume" validate:"required"`
}

// ComposeRequest is the request body for POST /compose.
type ComposeRequest struct {
	Job    *JobPosting `json:"job" validate:"required"`
	Resume *Resume     `json:"resume" validate:"required"`
	Style  EmailStyle  `json:"style,omitempty" validate:"omitempty,oneof=professional casual enthusiastic"`
}

// Validate validates the ExtractJobRequest using the validator.
func (r *ExtractJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ComposeRequest using the validator.
func (r *ComposeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
