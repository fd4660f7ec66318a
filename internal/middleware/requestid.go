package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID assigns every request a correlation id, honoring one supplied by
// the caller in X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestIDFrom returns the request's correlation id, or "" outside the
// middleware
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
