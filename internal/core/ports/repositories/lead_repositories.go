package repositories

import (
	"context"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// LeadRepository defines persistence operations for CRM leads.
type LeadRepository interface {
	SaveLead(ctx context.Context, lead domain.Lead) error
	FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error)
	ListLeads(ctx context.Context, organizationID string, status *domain.LeadStatus, limit int, offset int) ([]domain.Lead, error)
	UpdateLead(ctx context.Context, lead domain.Lead) error
	MarkLeadDeleted(ctx context.Context, leadID string, deletedAt time.Time, deletedBy string) error
}
