package middleware

import (
	"github.com/faustyna77/Automation-Energy-Sales/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics counts every request after the handler chain finished, labelled
// with the matched route and the final response status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.Observer.IncRequest(route, c.Writer.Status())
	}
}
