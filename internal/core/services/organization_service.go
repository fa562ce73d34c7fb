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
	"github.com/google/uuid"
)

// organizationService implements the OrganizationSvcFacade interface
type organizationService struct {
	BaseService
	orgRepo portsrepo.OrganizationRepository
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(orgRepo portsrepo.OrganizationRepository) portssvc.OrganizationSvcFacade {
	return &organizationService{
		orgRepo: orgRepo,
	}
}

// Ensure organizationService implements the OrganizationSvcFacade interface
var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// FindOrganizationByID retrieves an organization by its ID
func (s *organizationService) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find organization by ID",
				slog.String("organization_id", organizationID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Organization retrieved successfully",
		slog.String("organization_id", org.OrganizationID))
	return org, nil
}

// ListUserOrganizations retrieves all organizations a user belongs to
func (s *organizationService) ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error) {
	orgs, err := s.orgRepo.ListOrganizationsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list organizations for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if orgs == nil {
		return []domain.Organization{}, nil
	}

	s.LogDebug(ctx, "Organizations listed successfully",
		slog.Int("count", len(orgs)),
		slog.String("user_id", userID))
	return orgs, nil
}

// CreateOrganization creates a new organization with the creator as admin.
// The organization and the creator membership are persisted atomically.
func (s *organizationService) CreateOrganization(ctx context.Context, name, description, creatorUserID string) (*domain.Organization, error) {
	now := time.Now()
	organizationID := uuid.NewString()

	org := domain.Organization{
		OrganizationID: organizationID,
		Name:           name,
		Description:    description,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	creatorMembership := domain.UserOrganization{
		UserID:         creatorUserID,
		OrganizationID: organizationID,
		Role:           domain.RoleAdmin,
		JoinedAt:       now,
	}

	if err := s.orgRepo.SaveOrganization(ctx, org, creatorMembership); err != nil {
		s.LogError(ctx, err, "Failed to save organization",
			slog.String("organization_id", org.OrganizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Organization created successfully",
		slog.String("organization_id", org.OrganizationID),
		slog.String("creator_id", creatorUserID))
	return &org, nil
}

// UpdateOrganization updates an organization's name and/or description. Admin only.
func (s *organizationService) UpdateOrganization(ctx context.Context, organizationID, requestingUserID string, name, description *string) (*domain.Organization, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to update organization",
			slog.String("user_id", requestingUserID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	org, err := s.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	updated := false
	if name != nil {
		org.Name = *name
		updated = true
	}
	if description != nil {
		org.Description = *description
		updated = true
	}
	if !updated {
		return org, nil
	}

	now := time.Now()
	org.LastUpdatedAt = now
	org.LastUpdatedBy = requestingUserID

	if err := s.orgRepo.UpdateOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to update organization",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Organization updated successfully",
		slog.String("organization_id", organizationID))
	return org, nil
}

// AddUserToOrganization adds a user to an organization with a specific role
func (s *organizationService) AddUserToOrganization(ctx context.Context, addingUserID, targetUserID, organizationID string, role domain.UserOrganizationRole) error {
	// Self-assignment is permitted (e.g., creator adding self as admin)
	if addingUserID != targetUserID {
		if err := s.AuthorizeUserAction(ctx, addingUserID, organizationID, domain.RoleAdmin); err != nil {
			s.LogError(ctx, err, "User not authorized to add members to organization",
				slog.String("adding_user_id", addingUserID),
				slog.String("organization_id", organizationID))
			return err
		}
	}

	membership := domain.UserOrganization{
		UserID:         targetUserID,
		OrganizationID: organizationID,
		Role:           role,
		JoinedAt:       time.Now(),
	}

	if err := s.orgRepo.AddUserToOrganization(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to organization",
			slog.String("target_user_id", targetUserID),
			slog.String("organization_id", organizationID))
		return err
	}

	s.LogInfo(ctx, "User added to organization successfully",
		slog.String("target_user_id", targetUserID),
		slog.String("organization_id", organizationID),
		slog.String("role", string(role)))
	return nil
}

// AuthorizeUserAction checks if a user has required permissions for an organization
func (s *organizationService) AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.UserOrganizationRole) error {
	role, err := s.orgRepo.FindUserRole(ctx, userID, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of organization",
				slog.String("user_id", userID),
				slog.String("organization_id", organizationID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user organization role",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return err
	}

	if !role.Satisfies(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID),
			slog.String("user_role", string(role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}
