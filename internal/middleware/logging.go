package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Logging writes one access log line per request. It must run after RequestID
// so the line carries the trace ID.
func (mw Middleware) Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		took := time.Since(start)

		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "%s %s -> %d (%s) %s", c.Request.Method, c.FullPath(), status, took, c.ClientIP())
		case status >= 400:
			mw.l.Warnf(ctx, "%s %s -> %d (%s) %s", c.Request.Method, c.FullPath(), status, took, c.ClientIP())
		default:
			mw.l.Infof(ctx, "%s %s -> %d (%s)", c.Request.Method, c.FullPath(), status, took)
		}
	}
}
