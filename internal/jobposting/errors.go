package jobposting

import "fmt"

// ExtractionError represents a structural failure while extracting a job
// posting from markup. Field-level heuristics never raise it; they degrade
// to sentinel values instead.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("job extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
