package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
	"github.com/google/uuid"
)

// leadService implements the LeadSvcFacade interface
type leadService struct {
	BaseService
	leadRepo portsrepo.LeadRepository
}

// LeadServiceOption is a functional option for configuring the lead service
type LeadServiceOption func(*leadService)

// WithLeadOrganizationAuthorizer adds the organization authorizer dependency
func WithLeadOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) LeadServiceOption {
	return func(s *leadService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// NewLeadService creates a new lead service with the provided options
func NewLeadService(repo portsrepo.LeadRepository, options ...LeadServiceOption) portssvc.LeadSvcFacade {
	svc := &leadService{
		leadRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure leadService implements the LeadSvcFacade interface
var _ portssvc.LeadSvcFacade = (*leadService)(nil)

func (s *leadService) CreateLead(ctx context.Context, organizationID string, req dto.CreateLeadRequest, userID string) (*domain.Lead, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create lead",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	now := time.Now()
	lead := domain.Lead{
		LeadID:         uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Status:         domain.LeadNew,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.leadRepo.SaveLead(ctx, lead); err != nil {
		s.LogError(ctx, err, "Failed to save lead",
			slog.String("lead_id", lead.LeadID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Lead created successfully",
		slog.String("lead_id", lead.LeadID),
		slog.String("organization_id", organizationID))
	return &lead, nil
}

func (s *leadService) GetLeadByID(ctx context.Context, organizationID string, leadID string, userID string) (*domain.Lead, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	lead, err := s.leadRepo.FindLeadByID(ctx, leadID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find lead by ID",
				slog.String("lead_id", leadID))
		}
		return nil, err
	}

	if lead.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	return lead, nil
}

func (s *leadService) ListLeads(ctx context.Context, organizationID string, status *domain.LeadStatus, limit int, offset int, userID string) ([]domain.Lead, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	leads, err := s.leadRepo.ListLeads(ctx, organizationID, status, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leads",
			slog.String("organization_id", organizationID))
		return nil, err
	}
	if leads == nil {
		return []domain.Lead{}, nil
	}

	s.LogDebug(ctx, "Leads listed successfully",
		slog.Int("count", len(leads)),
		slog.String("organization_id", organizationID))
	return leads, nil
}

func (s *leadService) UpdateLead(ctx context.Context, organizationID string, leadID string, req dto.UpdateLeadRequest, userID string) (*domain.Lead, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	lead, err := s.GetLeadByID(ctx, organizationID, leadID, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		lead.Name = *req.Name
		updated = true
	}
	if req.Email != nil {
		lead.Email = *req.Email
		updated = true
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
		updated = true
	}
	if req.Status != nil {
		lead.Status = domain.LeadStatus(*req.Status)
		updated = true
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
		updated = true
	}
	if !updated {
		return lead, nil
	}

	now := time.Now()
	lead.LastUpdatedAt = now
	lead.LastUpdatedBy = userID

	if err := s.leadRepo.UpdateLead(ctx, *lead); err != nil {
		s.LogError(ctx, err, "Failed to update lead",
			slog.String("lead_id", leadID))
		return nil, err
	}

	s.LogInfo(ctx, "Lead updated successfully",
		slog.String("lead_id", leadID),
		slog.String("status", string(lead.Status)))
	return lead, nil
}

func (s *leadService) DeleteLead(ctx context.Context, organizationID string, leadID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return err
	}

	if _, err := s.GetLeadByID(ctx, organizationID, leadID, userID); err != nil {
		return err
	}

	if err := s.leadRepo.MarkLeadDeleted(ctx, leadID, time.Now(), userID); err != nil {
		s.LogError(ctx, err, "Failed to delete lead",
			slog.String("lead_id", leadID))
		return err
	}

	s.LogInfo(ctx, "Lead deleted successfully",
		slog.String("lead_id", leadID))
	return nil
}
