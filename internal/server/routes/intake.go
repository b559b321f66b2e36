package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/maasproduction/studio-api/internal/api/handlers"
	"github.com/maasproduction/studio-api/internal/api/middleware"
)

// SetupIntakeRoutes configures the two public form-submission
// endpoints. Order matters: the per-address gate runs before the body
// is even parsed.
func SetupIntakeRoutes(router *gin.RouterGroup, intake *handlers.IntakeHandler, m *Middleware) {
	router.POST("/availability",
		middleware.SubmissionRateLimit(m.Submission),
		m.Validation.ValidateAvailabilityRequest(),
		intake.CheckAvailability,
	)

	router.POST("/contact",
		middleware.SubmissionRateLimit(m.Submission),
		m.Validation.ValidateContactRequest(),
		intake.SubmitContact,
	)
}
