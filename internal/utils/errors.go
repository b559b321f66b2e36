package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/maasproduction/studio-api/internal/api/dto/common"
	"github.com/maasproduction/studio-api/internal/logging"
)

// HandleAPIError is a utility function for consistent error handling
// across the content API. Error details are only exposed outside
// release mode.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		status,
		message,
		err,
	)

	var errorDetails interface{}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		errorDetails = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, errorDetails))
}
