package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-registry/internal/logging"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var statusByCode = map[string]int{
	"invalid_field":        http.StatusBadRequest,
	"constraint_violation": http.StatusConflict,
	"reference_violation":  http.StatusUnprocessableEntity,
	"connection_failure":   http.StatusServiceUnavailable,
}

// FromError answers with the status of a business error, or 500 for
// anything else. The message carries the full error chain.
func FromError(c *gin.Context, err error) {
	if code, ok := CodeOf(err); ok {
		status, known := statusByCode[code]
		if !known {
			status = http.StatusBadRequest
		}
		if status >= http.StatusInternalServerError {
			logging.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		}
		Write(c, status, code, err.Error())
		return
	}

	logging.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	Internal(c, "internal_error", "Unexpected error.")
}
