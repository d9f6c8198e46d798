package middleware

import (
	"strconv"
	"time"

	"smartwash/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records per-request counters and latency histograms.
// Route templates (not raw paths) are used as labels to keep cardinality low.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.RecordHTTPRequest(c.Request.Method, path, status, time.Since(start).Seconds())
	}
}
