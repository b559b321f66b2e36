package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/maasproduction/studio-api/internal/api/constants"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Honor an existing request ID from the proxy
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}
