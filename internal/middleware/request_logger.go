package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader is the response header carrying the generated request id
const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with a uuid and logs method, path, status
// and latency once the handler chain finishes.
func RequestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Set("requestID", requestID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		event := lgr.Info()
		if c.Writer.Status() >= 500 {
			event = lgr.Error()
		} else if c.Writer.Status() >= 400 {
			event = lgr.Warn()
		}

		event.
			Str("requestId", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", duration).
			Str("clientIp", c.ClientIP()).
			Msg("Request handled")
	}
}
