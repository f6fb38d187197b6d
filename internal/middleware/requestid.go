package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"degen/internal/logger"
)

// RequestIDMiddleware generates a unique request ID for each HTTP request
// and stores it in the Gin context. It also sets the X-Request-ID header
// in the response so clients can track requests.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Reuse an incoming request ID for distributed tracing
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(logger.RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
