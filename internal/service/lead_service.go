package service

import (
	"context"

	"github.com/maasproduction/studio-api/internal/logging"
	"github.com/maasproduction/studio-api/internal/sanity"
)

// ContentWriter is the capability-checked write side of the content
// store. CanWrite gates whether a write is attempted at all.
type ContentWriter interface {
	CanWrite() bool
	Create(ctx context.Context, doc interface{}) error
}

// LeadService persists inquiry leads to the content store. Persistence
// is best-effort: a lead that fails to save must never block the
// notification path, so Save absorbs every failure.
type LeadService struct {
	store ContentWriter
}

// NewLeadService creates a new lead service
func NewLeadService(store ContentWriter) *LeadService {
	return &LeadService{store: store}
}

// Save writes the lead if the store is writable. Errors are logged and
// discarded; a disabled write path is skipped with a warning.
func (s *LeadService) Save(ctx context.Context, lead *sanity.Lead) {
	logger := logging.GetGlobalLogger()

	if !s.store.CanWrite() {
		logger.Warn("Content store write client not configured. Set SANITY_API_WRITE_TOKEN to save leads.")
		return
	}

	if err := s.store.Create(ctx, lead); err != nil {
		logger.Error("Failed to save lead to content store: %v", err)
	}
}
