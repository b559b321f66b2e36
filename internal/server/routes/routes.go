package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maasproduction/studio-api/internal/logging"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	// Create base API v1 group
	v1 := router.Group("/api/v1")

	SetupHealthRoutes(router, h.Health)
	SetupIntakeRoutes(v1, h.Intake, m)
	SetupContentRoutes(v1, h.Content)

	logger.Info("All routes have been set up successfully")
}
