package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClientInput struct {
	Name  string `json:"client_name" validate:"required,max=40"`
	Email string `json:"client_email" validate:"required,max=100"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		in        testClientInput
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid input",
			in:   testClientInput{Name: "Ivan", Email: "ivan@example.com"},
		},
		{
			name:      "Missing name",
			in:        testClientInput{Email: "ivan@example.com"},
			wantError: true,
			errorMsg:  "client_name is required",
		},
		{
			name:      "Name too long",
			in:        testClientInput{Name: strings.Repeat("a", 41), Email: "ivan@example.com"},
			wantError: true,
			errorMsg:  "client_name must be at most 40 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&tt.in)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestValidator_Var(t *testing.T) {
	v := New()

	assert.NoError(t, v.Var("phone", "123456789", "max=15"))

	err := v.Var("phone", strings.Repeat("9", 16), "max=15")
	require.Error(t, err)

	var fes FieldErrors
	require.ErrorAs(t, err, &fes)
	assert.Equal(t, "phone", fes[0].Field)
	assert.Equal(t, "max", fes[0].Tag)
	assert.Contains(t, err.Error(), "phone must be at most 15 characters")
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{
		{Field: "a", Message: "a is required"},
		{Field: "b", Message: "b must be at most 3 characters"},
	}
	assert.Equal(t, "a is required; b must be at most 3 characters", errs.Error())
}
