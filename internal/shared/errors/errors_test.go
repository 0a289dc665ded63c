package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"not found", NewNotFoundError("store not found"), http.StatusNotFound},
		{"forbidden", NewForbiddenError("blocked"), http.StatusForbidden},
		{"conflict", NewConflictError("inactive"), http.StatusConflict},
		{"bad request", NewBadRequestError("bad status"), http.StatusBadRequest},
		{"validation", NewValidationError("invalid"), http.StatusUnprocessableEntity},
		{"unauthorized", NewUnauthorizedError("no token"), http.StatusUnauthorized},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("resolve store: %w", NewNotFoundError("store not found", "example.com"))

	appErr := GetAppError(wrapped)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, ErrorTypeNotFound, appErr.Type)
		assert.Equal(t, "example.com", appErr.Details)
	}
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsConflictError(wrapped))
	assert.Nil(t, GetAppError(errors.New("plain")))
}

func TestAppError_IsMatchesSentinel(t *testing.T) {
	sentinel := NewConflictError("store is inactive")
	err := fmt.Errorf("wrap: %w", NewConflictError("store is inactive", "owner not admin"))

	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, NewConflictError("other message")))
	assert.True(t, errors.Is(err, &AppError{Type: ErrorTypeConflict}))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062: Duplicate entry 'a' for key 'idx'")))
	assert.True(t, IsDuplicateError(errors.New(`ERROR: duplicate key value violates unique constraint "x"`)))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: members.store_id, members.email")))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
