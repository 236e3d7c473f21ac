package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// AppError carries a caller-safe message alongside one of the sentinel kinds.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Status maps an error to the HTTP status and the message safe to show the caller.
// Anything that is not an AppError is a backend failure and gets a generic message.
func Status(err error) (int, string) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "Internal server error"
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, appErr.Message
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, appErr.Message
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
