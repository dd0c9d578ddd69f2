package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{Validation("Missing required field: name"), http.StatusBadRequest},
		{NotFound("patient", nil), http.StatusNotFound},
		{Conflict("patient already exists", nil), http.StatusInternalServerError},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatus(), tt.err.Message)
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("medical record", nil)
	assert.Equal(t, "medical record not found", err.Message)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := Conflict("patient already exists", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), cause.Error())

	wrapped := fmt.Errorf("creating patient: %w", err)
	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, ErrConflict, appErr.Code)
}
