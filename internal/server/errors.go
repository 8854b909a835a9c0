package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/jonathan/resume-fit/internal/analysis"
	"github.com/jonathan/resume-fit/internal/ingestion"
)

// ErrMalformedRequest indicates the request body could not be read as a
// multipart form.
type ErrMalformedRequest struct {
	Cause error
}

func (e *ErrMalformedRequest) Error() string {
	return "malformed multipart request: " + e.Cause.Error()
}

func (e *ErrMalformedRequest) Unwrap() error {
	return e.Cause
}

// ErrBodyTooLarge indicates the upload exceeded the configured limit.
type ErrBodyTooLarge struct {
	Limit int64
}

func (e *ErrBodyTooLarge) Error() string {
	return "request body too large"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		missing     *analysis.InputMissingError
		unsupported *ingestion.UnsupportedFileTypeError
		malformed   *ErrMalformedRequest
		tooLarge    *ErrBodyTooLarge
		decode      *ingestion.DecodeError
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &missing), errors.As(err, &unsupported), errors.As(err, &malformed):
		return http.StatusBadRequest
	case errors.As(err, &decode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// errorKind names an error for metrics labels.
func errorKind(err error) string {
	switch HTTPStatus(err) {
	case http.StatusRequestEntityTooLarge:
		return "too_large"
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnprocessableEntity:
		return "decode_failed"
	case http.StatusGatewayTimeout:
		return "timeout"
	default:
		return "internal"
	}
}
