package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-auth-signup/pkg/metrics"
)

// Metrics records request latency by route template and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
