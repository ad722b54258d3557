package resume

import "fmt"

// UnsupportedFormatError indicates the document type cannot be decoded.
// It is fatal to the parse call.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %s", e.Extension)
}

// FileTooLargeError indicates the uploaded document exceeds the size ceiling.
type FileTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file size %d exceeds limit of %d bytes", e.Size, e.Limit)
}

// DecodeError indicates the document bytes could not be decoded into text.
type DecodeError struct {
	Format string
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to decode %s document: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("failed to decode %s document", e.Format)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// ExtractionError represents a structural failure while parsing résumé text.
// Field-level heuristics never raise it; they degrade to sentinel values.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
