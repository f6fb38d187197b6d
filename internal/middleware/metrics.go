package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"degen/internal/metrics"
)

// MetricsMiddleware tracks HTTP request metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()

		// Use the matched route if available, otherwise the raw path
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}

		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		metrics.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, endpoint, statusCode).Observe(duration)
	}
}
