package validator

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "institute/internal/domain/errors"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=2"`
	Mode  string `json:"mode" validate:"omitempty,oneof=Online Offline Hybrid"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "a@b.com", Name: "Asha"})

	assert.NoError(t, err)
}

func TestValidate_MapsViolationsToFieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "nope", Name: "", Mode: "Remote"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())

	fields, ok := appErr.Details().([]domainerrors.FieldError)
	require.True(t, ok)
	require.Len(t, fields, 3)

	byField := make(map[string]string, len(fields))
	for _, f := range fields {
		byField[f.Field] = f.Message
	}

	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "is required", byField["name"])
	assert.Equal(t, "must be one of: Online, Offline, Hybrid", byField["mode"])
}
