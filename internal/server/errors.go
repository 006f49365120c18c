package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/github"
	"github.com/jonathan/resume-builder/internal/ingestion"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnavailable indicates a feature whose backend is not configured
type ErrUnavailable struct {
	Feature string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s is not configured on this server", e.Feature)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		validation   *ErrValidation
		fieldErrs    validator.ValidationErrors
		unavailable  *ErrUnavailable
		tooLarge     *ingestion.TooLargeError
		bodyTooLarge *http.MaxBytesError
		unsupported  *ingestion.UnsupportedFormatError
		extraction   *ingestion.ExtractionError
		ghNotFound   *github.NotFoundError
		ghAPI        *github.APIError
		genErr       *generation.Error
		docNotFound  *db.NotFoundError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &tooLarge), errors.As(err, &bodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &ghNotFound), errors.As(err, &docNotFound):
		return http.StatusNotFound
	case errors.As(err, &ghAPI):
		return http.StatusBadGateway
	case errors.As(err, &genErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
