package client

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/client-registry/internal/httperr"
)

func TestFields_Updates(t *testing.T) {
	tests := []struct {
		name    string
		fields  Fields
		want    []Update
		wantErr error
	}{
		{
			name:   "Nil and missing values are skipped",
			fields: Fields{FieldName: nil, FieldEmail: Value("new@example.com")},
			want:   []Update{{Field: FieldEmail, Value: "new@example.com"}},
		},
		{
			name: "Fixed column order",
			fields: Fields{
				FieldEmail:      Value("e@example.com"),
				FieldSecondname: Value("Sidorov"),
				FieldName:       Value("Ivan"),
			},
			want: []Update{
				{Field: FieldName, Value: "Ivan"},
				{Field: FieldSecondname, Value: "Sidorov"},
				{Field: FieldEmail, Value: "e@example.com"},
			},
		},
		{
			name:   "Empty map",
			fields: Fields{},
			want:   nil,
		},
		{
			name:    "Phone is not updatable",
			fields:  Fields{FieldPhone: Value("123")},
			wantErr: ErrInvalidField,
		},
		{
			name:    "Unknown column",
			fields:  Fields{"client_id; DROP TABLE client_info": Value("1")},
			wantErr: ErrInvalidField,
		},
		{
			name:    "Explicit empty value for required column",
			fields:  Fields{FieldName: Value("")},
			wantErr: ErrConstraintViolation,
		},
		{
			name:    "Too long",
			fields:  Fields{FieldSecondname: Value(strings.Repeat("x", 61))},
			wantErr: ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fields.Updates()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFields_Filters(t *testing.T) {
	got, err := Fields{
		FieldPhone: Value("555"),
		FieldName:  Value("an"),
		FieldEmail: nil,
	}.Filters()
	require.NoError(t, err)
	assert.Equal(t, []Filter{
		{Field: FieldName, Value: "an"},
		{Field: FieldPhone, Value: "555"},
	}, got)

	_, err = Fields{"client_id": Value("1")}.Filters()
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_field"))
	assert.Contains(t, err.Error(), `"client_id"`)
}

func TestFilter_PatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%an%", Filter{Value: "an"}.Pattern())
	assert.Equal(t, `%50\%\_off\\%`, Filter{Value: `50%_off\`}.Pattern())
}

func TestField_Qualified(t *testing.T) {
	assert.Equal(t, "c.client_name", FieldName.Qualified())
	assert.Equal(t, "p.phone", FieldPhone.Qualified())
	assert.Equal(t, "", Field("nope").Qualified())
}

func TestNewClient_Validate(t *testing.T) {
	ok := NewClient{Name: "Ivan", Secondname: "Ivanov", Email: "ivanov@example.com"}
	assert.NoError(t, ok.Validate())

	missing := NewClient{Name: "Ivan", Email: "ivanov@example.com"}
	err := missing.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.Contains(t, err.Error(), "client_secondname is required")
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("123456789"))
	assert.NoError(t, ValidatePhone(""))
	assert.ErrorIs(t, ValidatePhone(strings.Repeat("1", 16)), ErrConstraintViolation)
}
