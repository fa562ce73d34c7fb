package repositories

import (
	"context"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// OrganizationRepository defines persistence operations for organizations
// and their memberships.
type OrganizationRepository interface {
	SaveOrganization(ctx context.Context, org domain.Organization, creatorMembership domain.UserOrganization) error
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
	UpdateOrganization(ctx context.Context, org domain.Organization) error
	ListOrganizationsByUser(ctx context.Context, userID string) ([]domain.Organization, error)
	AddUserToOrganization(ctx context.Context, membership domain.UserOrganization) error
	// FindUserRole returns the caller's role in the organization, or
	// apperrors.ErrNotFound when the user is not a member.
	FindUserRole(ctx context.Context, userID, organizationID string) (domain.UserOrganizationRole, error)
}
