package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/client-registry/internal/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an X-Request-ID and logs its outcome.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(ContextRequestID, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		keyvals := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
		}
		if subject := c.GetString(ContextSubject); subject != "" {
			keyvals = append(keyvals, "subject", subject)
		}

		switch {
		case status >= 500:
			logging.L.Error("server error", keyvals...)
		case status >= 400:
			logging.L.Warn("client error", keyvals...)
		default:
			logging.L.Info("request completed", keyvals...)
		}
	}
}
