package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware logs one line per request: short request id, method,
// path, status, latency and client IP. The id is echoed back in
// X-Request-ID so the UI can quote it when reporting a problem.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}

		c.Next()

		log.Printf("[%s] %s %s | %d | %v | %s",
			requestID[:8],
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)

		for _, e := range c.Errors {
			log.Printf("[%s] error: %v", requestID[:8], e.Err)
		}
	}
}
