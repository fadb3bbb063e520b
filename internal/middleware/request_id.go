package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/calendar-booking/internal/audit"
)

const (
	ContextRequestID = "requestID"

	requestIDMaxLen = 64
)

// RequestID reuses a sane X-Request-ID header or generates one, and makes it
// available both on the gin context and on the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.NewString()
		}

		c.Set(ContextRequestID, rid)
		c.Header("X-Request-ID", rid)
		c.Request = c.Request.WithContext(audit.WithRequestID(c.Request.Context(), rid))

		c.Next()
	}
}
