package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/energy-jobboard/internal/schemas"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "skills", Message: "required"}
	assert.Equal(t, "validation error: skills - required", err.Error())
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Resource: "job", ID: "abc"}
	assert.Equal(t, "job not found: abc", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", &ErrValidation{Field: "f", Message: "m"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("decode: %w", &ErrValidation{}), http.StatusBadRequest},
		{"schema", fmt.Errorf("job_postings: %w", &schemas.ValidationError{}), http.StatusBadRequest},
		{"not found", &ErrNotFound{Resource: "job", ID: "1"}, http.StatusNotFound},
		{"store disabled", &ErrStoreDisabled{}, http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestValidationError(t *testing.T) {
	type body struct {
		Skills []string `json:"skills" validate:"required"`
	}

	err := newValidator().Struct(body{})
	var ve *ErrValidation
	assert.True(t, errors.As(validationError(err), &ve))
	assert.Equal(t, "skills", ve.Field)
	assert.Equal(t, "required", ve.Message)

	assert.Equal(t, "body", validationError(errors.New("x")).(*ErrValidation).Field)
}
