package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
	failedKey       = "requestFailed"
)

// MarkFailed flags a request whose handler hit an unexpected failure, even
// when nothing was written and the response goes out as 200.
func MarkFailed(c *gin.Context) {
	c.Set(failedKey, true)
}

// effectiveStatus reports 500 for requests flagged by MarkFailed.
func effectiveStatus(c *gin.Context) int {
	status := c.Writer.Status()
	if c.GetBool(failedKey) && status < http.StatusInternalServerError {
		return http.StatusInternalServerError
	}
	return status
}

// RequestLogger tags each request with an id and logs it once it completes.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		status := effectiveStatus(c)
		entry := log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"failed":     status >= http.StatusInternalServerError,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		if status >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Info("request")
	}
}
