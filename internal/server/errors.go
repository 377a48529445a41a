package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrReportNotFound indicates no stored report exists for the requested ID.
type ErrReportNotFound struct {
	ID uuid.UUID
}

func (e *ErrReportNotFound) Error() string {
	return fmt.Sprintf("report not found: %s", e.ID)
}

// ErrValidation indicates a request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrFetchFailed indicates a job posting URL could not be fetched.
type ErrFetchFailed struct {
	URL   string
	Cause error
}

func (e *ErrFetchFailed) Error() string {
	return fmt.Sprintf("failed to fetch job posting from %s: %v", e.URL, e.Cause)
}

func (e *ErrFetchFailed) Unwrap() error {
	return e.Cause
}

// ErrUnsupportedDocument indicates an uploaded document could not be decoded.
type ErrUnsupportedDocument struct {
	Filename string
	Cause    error
}

func (e *ErrUnsupportedDocument) Error() string {
	return fmt.Sprintf("unsupported document %s: %v", e.Filename, e.Cause)
}

func (e *ErrUnsupportedDocument) Unwrap() error {
	return e.Cause
}

// ErrStorageDisabled indicates the server runs without a database.
type ErrStorageDisabled struct{}

func (e *ErrStorageDisabled) Error() string {
	return "report storage is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrReportNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrFetchFailed:
		return http.StatusBadGateway
	case *ErrUnsupportedDocument:
		return http.StatusUnsupportedMediaType
	case *ErrStorageDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
