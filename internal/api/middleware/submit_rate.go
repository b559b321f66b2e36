package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maasproduction/studio-api/internal/ratelimit"
)

// ClientAddress derives the rate-limit key for a request: the first
// comma-separated value of X-Forwarded-For, trimmed. Header-less
// clients all share the "unknown" bucket.
func ClientAddress(c *gin.Context) string {
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor == "" {
		return "unknown"
	}

	addr := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	if addr == "" {
		return "unknown"
	}
	return addr
}

// SubmissionRateLimit gates the form-submission endpoints with the
// per-address fixed-window limiter. Rejected requests never reach
// parsing or validation.
func SubmissionRateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), ClientAddress(c)) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again in a moment.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
