package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maasproduction/studio-api/internal/logging"
)

// RequestLogger logs every request through the application logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger := logging.GetGlobalLogger()
		logger.LogHTTPRequest(
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
