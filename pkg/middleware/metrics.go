package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"clausemap/internal/metrics"
)

// MetricsMiddleware labels requests by route template, so /api/provinces/:province_id
// stays one series regardless of the key requested.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDurationMs.WithLabelValues(c.Request.Method, route).Observe(float64(time.Since(start).Microseconds()) / 1000)
	}
}
