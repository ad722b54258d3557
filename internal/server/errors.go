package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cold-outreach/internal/composer"
	"github.com/jonathan/cold-outreach/internal/fetch"
	"github.com/jonathan/cold-outreach/internal/jobposting"
	"github.com/jonathan/cold-outreach/internal/resume"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		fetchErr       *fetch.Error
		jobExtractErr  *jobposting.ExtractionError
		formatErr      *resume.UnsupportedFormatError
		tooLargeErr    *resume.FileTooLargeError
		decodeErr      *resume.DecodeError
		resumeErr      *resume.ExtractionError
		generationErr  *composer.GenerationError
		analysisErr    *composer.AnalysisError
		validationErrs validator.ValidationErrors
	)

	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.As(err, &formatErr):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.As(err, &jobExtractErr), errors.As(err, &decodeErr), errors.As(err, &resumeErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &generationErr), errors.As(err, &analysisErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
