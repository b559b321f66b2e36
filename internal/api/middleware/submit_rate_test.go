package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClientAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "single address",
			header:   "203.0.113.7",
			expected: "203.0.113.7",
		},
		{
			name:     "proxy chain uses first hop",
			header:   "203.0.113.7, 10.0.0.1, 10.0.0.2",
			expected: "203.0.113.7",
		},
		{
			name:     "surrounding whitespace is trimmed",
			header:   "  203.0.113.7  ,10.0.0.1",
			expected: "203.0.113.7",
		},
		{
			name:     "missing header",
			header:   "",
			expected: "unknown",
		},
		{
			name:     "blank first element",
			header:   " ,203.0.113.7",
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/availability", nil)
			if tt.header != "" {
				c.Request.Header.Set("X-Forwarded-For", tt.header)
			}

			assert.Equal(t, tt.expected, ClientAddress(c))
		})
	}
}
