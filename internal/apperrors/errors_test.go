package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/taxbooks_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     int
	}{
		{"not found", apperrors.NewNotFoundError("business", "b1"), apperrors.ErrNotFound, http.StatusNotFound},
		{"validation", apperrors.NewValidationFailedError("amount must be >= 0"), apperrors.ErrValidation, http.StatusBadRequest},
		{"duplicate", apperrors.NewDuplicateError("email taken"), apperrors.ErrDuplicate, http.StatusConflict},
		{"conflict", apperrors.NewConflictError("invoice", "i1", 1, 2), apperrors.ErrConflict, http.StatusConflict},
		{"forbidden", apperrors.NewForbiddenError("no access"), apperrors.ErrForbidden, http.StatusForbidden},
		{"unauthorized", apperrors.NewUnauthorizedError("bad credentials"), apperrors.ErrUnauthorized, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service layer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)

			var appErr *apperrors.AppError
			assert.True(t, errors.As(wrapped, &appErr))
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestAppError_ErrorMessage(t *testing.T) {
	err := apperrors.NewNotFoundError("user", "u1")
	assert.Equal(t, "user u1 not found: resource not found", err.Error())

	bare := apperrors.NewAppError(http.StatusInternalServerError, "boom", nil)
	assert.Equal(t, "boom", bare.Error())
}
