package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maasproduction/studio-api/internal/api/constants"
	"github.com/maasproduction/studio-api/internal/api/dto/v1/intake"
	"github.com/maasproduction/studio-api/internal/logging"
	"github.com/maasproduction/studio-api/internal/sanity"
	"github.com/maasproduction/studio-api/internal/service"
)

// User-facing failure messages when the notification cannot be sent.
const (
	availabilityFailureMessage = "We couldn't send your message right now. Please try again in a few minutes or reach out on WhatsApp directly."
	contactFailureMessage      = "We couldn't send your message right now. Please try again in a few minutes."
)

// IntakeHandler runs the shared submission pipeline for both forms:
// spam filter, best-effort lead persistence, then the authoritative
// email notification.
type IntakeHandler struct {
	leadService *service.LeadService
	mailService *service.MailService
}

// NewIntakeHandler creates a new intake handler
func NewIntakeHandler(leadService *service.LeadService, mailService *service.MailService) *IntakeHandler {
	return &IntakeHandler{
		leadService: leadService,
		mailService: mailService,
	}
}

// CheckAvailability handles a validated availability-check submission.
func (h *IntakeHandler) CheckAvailability(c *gin.Context) {
	data, exists := c.Get(constants.ContextKeyAvailability)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": availabilityFailureMessage})
		return
	}

	req, ok := data.(*intake.AvailabilityRequest)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": availabilityFailureMessage})
		return
	}

	// Bots get the same success response as everyone else, with no
	// side effects. The asymmetry denies them a signal.
	if intake.IsSpam(req) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	ctx := c.Request.Context()

	h.leadService.Save(ctx, sanity.NewLead(
		req.Name,
		req.Whatsapp,
		req.WeddingDate,
		req.City,
		sanity.LeadSourceAvailability,
	))

	if err := h.mailService.SendAvailabilityInquiry(ctx, req.Name, req.Whatsapp, req.WeddingDate, req.City); err != nil {
		logger := logging.GetGlobalLogger()
		logger.Error("Failed to send availability inquiry email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": availabilityFailureMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SubmitContact handles a validated contact form submission.
func (h *IntakeHandler) SubmitContact(c *gin.Context) {
	data, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": contactFailureMessage})
		return
	}

	req, ok := data.(*intake.ContactRequest)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": contactFailureMessage})
		return
	}

	if intake.IsSpam(req) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	ctx := c.Request.Context()

	// The lead store only has availability-shaped fields, so the email
	// lands in the contact-channel attribute and the subject in the
	// city attribute.
	h.leadService.Save(ctx, sanity.NewLead(
		req.FirstName+" "+req.LastName,
		req.Email,
		"",
		req.Subject,
		sanity.LeadSourceContact,
	))

	if err := h.mailService.SendContactMessage(ctx, req.FirstName, req.LastName, req.Email, req.Subject, req.Message); err != nil {
		logger := logging.GetGlobalLogger()
		logger.Error("Failed to send contact email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": contactFailureMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
