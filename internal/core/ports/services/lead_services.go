package services

import (
	"context"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
)

// LeadReaderSvc defines read operations for leads
type LeadReaderSvc interface {
	// GetLeadByID retrieves a specific lead.
	GetLeadByID(ctx context.Context, organizationID string, leadID string, userID string) (*domain.Lead, error)

	// ListLeads retrieves a paginated, optionally status-filtered list of leads.
	ListLeads(ctx context.Context, organizationID string, status *domain.LeadStatus, limit int, offset int, userID string) ([]domain.Lead, error)
}

// LeadWriterSvc defines write operations for leads
type LeadWriterSvc interface {
	// CreateLead persists a new lead with status "new".
	CreateLead(ctx context.Context, organizationID string, req dto.CreateLeadRequest, userID string) (*domain.Lead, error)

	// UpdateLead updates an existing lead.
	UpdateLead(ctx context.Context, organizationID string, leadID string, req dto.UpdateLeadRequest, userID string) (*domain.Lead, error)

	// DeleteLead marks a lead as deleted (soft delete).
	DeleteLead(ctx context.Context, organizationID string, leadID string, userID string) error
}

// LeadSvcFacade combines all lead-related service interfaces
type LeadSvcFacade interface {
	LeadReaderSvc
	LeadWriterSvc
}
