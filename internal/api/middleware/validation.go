package middleware

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/maasproduction/studio-api/internal/api/constants"
	"github.com/maasproduction/studio-api/internal/api/dto/v1/intake"
	"github.com/maasproduction/studio-api/internal/api/validation"
)

// ValidationMiddleware handles request parsing and validation. Parsing
// and validation are distinct steps: an unparsable body is rejected
// before any field rule runs.
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return &ValidationMiddleware{
		validate: validate,
	}
}

// ValidateAvailabilityRequest parses and validates an availability-check
// submission and stores it in the request context.
func (m *ValidationMiddleware) ValidateAvailabilityRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req intake.AvailabilityRequest
		if !m.bindAndValidate(c, &req) {
			return
		}

		c.Set(constants.ContextKeyAvailability, &req)
		c.Next()
	}
}

// ValidateContactRequest parses and validates a contact form submission
// and stores it in the request context.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req intake.ContactRequest
		if !m.bindAndValidate(c, &req) {
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}

func (m *ValidationMiddleware) bindAndValidate(c *gin.Context, req interface{}) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body.",
		})
		c.Abort()
		return false
	}

	// Parse failure only covers unparsable JSON. A parsable body with a
	// wrong-typed field is a validation problem reported per field.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body.",
		})
		c.Abort()
		return false
	}

	fieldErrors := validation.DecodeFields(raw, req)

	if err := m.validate.Struct(req); err != nil {
		for field, messages := range validation.FormatValidationError(err) {
			// A field that failed to decode stays at its zero value;
			// reporting the rule violations on top would be noise.
			if _, decodeFailed := fieldErrors[field]; decodeFailed {
				continue
			}
			fieldErrors[field] = messages
		}
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "Validation failed.",
			"fieldErrors": fieldErrors,
		})
		c.Abort()
		return false
	}

	return true
}
