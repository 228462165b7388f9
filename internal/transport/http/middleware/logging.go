package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"exercise-tracker/internal/logger"
)

// RequestLogger logs method, route, status and duration for each request.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		attrs := []any{
			"method", c.Request.Method,
			"route", route,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("http request failed", attrs...)
		case status >= 400:
			log.Warn("http request rejected", attrs...)
		default:
			log.Info("http request completed", attrs...)
		}
	}
}
