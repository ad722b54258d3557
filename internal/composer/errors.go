package composer

import "fmt"

// GenerationError represents a failure to generate an email draft.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("email generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("email generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// AnalysisError represents a failure to analyze a draft's effectiveness.
type AnalysisError struct {
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("draft analysis failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("draft analysis failed: %s", e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
