package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrBusiness("constraint_violation"), errors.New("UNIQUE constraint failed"))

	assert.True(t, IsBusiness(err, "constraint_violation"))
	assert.False(t, IsBusiness(err, "invalid_field"))
	assert.False(t, IsBusiness(errors.New("plain"), "constraint_violation"))
	assert.ErrorIs(t, err, ErrBusiness("constraint_violation"))

	code, ok := CodeOf(fmt.Errorf("wrapped: %w", err))
	assert.True(t, ok)
	assert.Equal(t, "constraint_violation", code)

	_, ok = CodeOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"Invalid field", fmt.Errorf("%w: %q", ErrBusiness("invalid_field"), "x"), http.StatusBadRequest, "invalid_field"},
		{"Constraint", ErrBusiness("constraint_violation"), http.StatusConflict, "constraint_violation"},
		{"Reference", ErrBusiness("reference_violation"), http.StatusUnprocessableEntity, "reference_violation"},
		{"Connection", ErrBusiness("connection_failure"), http.StatusServiceUnavailable, "connection_failure"},
		{"Unmapped business code", ErrBusiness("something_else"), http.StatusBadRequest, "something_else"},
		{"Plain error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			FromError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Code)
		})
	}
}
