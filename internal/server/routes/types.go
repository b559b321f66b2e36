package routes

import (
	"github.com/maasproduction/studio-api/internal/api/handlers"
	"github.com/maasproduction/studio-api/internal/api/middleware"
	"github.com/maasproduction/studio-api/internal/ratelimit"
)

// Handlers contains all the route handlers
type Handlers struct {
	Intake  *handlers.IntakeHandler
	Content *handlers.ContentHandler
	Health  *handlers.HealthHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
	Submission ratelimit.Limiter
}
