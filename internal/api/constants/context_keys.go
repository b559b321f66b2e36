package constants

// Context keys for validated requests
const (
	// Intake context keys
	ContextKeyAvailability = "availability"
	ContextKeyContact      = "contact"

	// Request metadata
	ContextKeyRequestID = "RequestID"
)
