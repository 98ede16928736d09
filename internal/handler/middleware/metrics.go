package middleware

import (
	"time"

	"court-reservation/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records one observation per request, labelled by the
// matched route template rather than the raw path.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
