package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string  `validate:"required,email"`
	Role     string  `validate:"required,oneof=patient admin"`
	Latitude float64 `validate:"latitude"`
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{
		Email:    "user@example.com",
		Role:     "patient",
		Latitude: -6.2,
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{
		Email:    "not-an-email",
		Role:     "doctor",
		Latitude: 120,
	})
	require.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Role must be one of: patient admin", formatted["Role"])
	assert.Equal(t, "Latitude must be a valid latitude", formatted["Latitude"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Latitude: 0})
	require.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", formatted["Email"])
	assert.Equal(t, "Role is required", formatted["Role"])
}
