package intake

import "strings"

// AvailabilityRequest is the availability-check form submission
type AvailabilityRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=120"`
	Whatsapp    string `json:"whatsapp" binding:"required,min=8,max=20,whatsapp"`
	WeddingDate string `json:"weddingDate" binding:"required,todayorfuture"`
	City        string `json:"city" binding:"required,min=2,max=120"`

	// Honeypot - must remain empty for a genuine submission
	Company string `json:"company" binding:"omitempty"`
}

// ContactRequest is the contact form submission
type ContactRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=60"`
	LastName  string `json:"lastName" binding:"required,min=1,max=60"`
	Email     string `json:"email" binding:"required,email,max=120"`
	Subject   string `json:"subject" binding:"required,min=2,max=200"`
	Message   string `json:"message" binding:"required,min=10,max=2000"`

	// Honeypot - must remain empty for a genuine submission
	Company string `json:"company" binding:"omitempty"`
}

// HoneypotCarrier is satisfied by every form payload that carries the
// hidden company field.
type HoneypotCarrier interface {
	HoneypotValue() string
}

func (r *AvailabilityRequest) HoneypotValue() string { return r.Company }
func (r *ContactRequest) HoneypotValue() string      { return r.Company }

// IsSpam reports whether the honeypot was tripped. Callers must then
// return the same success response as a genuine submission while
// performing no side effects.
func IsSpam(payload HoneypotCarrier) bool {
	return strings.TrimSpace(payload.HoneypotValue()) != ""
}
