package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vasandree/hits-docker-practice/services"
)

// AnalyticsMiddleware records every request into the collector. Routed
// requests are keyed by route pattern so path parameters don't explode the
// table; unrouted ones fall back to the raw path.
func AnalyticsMiddleware(collector *services.AnalyticsCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		collector.Record(path, c.Writer.Status(), time.Since(start).Milliseconds())
	}
}
