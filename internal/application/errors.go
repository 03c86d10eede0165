package application

import (
	"errors"
	"net/http"
)

// Error is a terminal outcome of the quote API with the HTTP status it maps to.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrInvalidJSON     = &Error{Status: http.StatusBadRequest, Message: "Invalid JSON payload"}
	ErrMissingFields   = &Error{Status: http.StatusBadRequest, Message: "Missing name, email or value"}
	ErrNotConfigured   = &Error{Status: http.StatusInternalServerError, Message: "Server not configured"}
	ErrNoOutput        = &Error{Status: http.StatusInternalServerError, Message: "No output from workflow"}
	ErrMalformedOutput = &Error{Status: http.StatusInternalServerError, Message: "Malformed workflow output"}
	ErrNoQuote         = &Error{Status: http.StatusInternalServerError, Message: "Workflow did not return a quote"}
)

// WorkflowFailed reports an error raised by the workflow invocation itself.
func WorkflowFailed(err error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: "Failed to start workflow: " + err.Error(),
		Err:     err,
	}
}

// StatusOf returns the HTTP status and client-facing message for err.
func StatusOf(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
