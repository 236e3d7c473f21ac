package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation",
			err:        ValidationFailed("userID", "userID is required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "userID is required",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("get event: %w", NotFound("event", "7")),
			wantStatus: http.StatusNotFound,
			wantMsg:    "event 7 not found",
		},
		{
			name:       "backend failure hides detail",
			err:        errors.New("dial tcp 10.0.0.3:5432: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name:       "app error without kind",
			err:        &AppError{Err: errors.New("odd"), Message: "odd"},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Status(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", ValidationFailed("page", "page must be a positive integer"))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "page", appErr.Field)
}
