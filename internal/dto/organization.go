package dto

import "github.com/aidaadigitall/escfinan-sub003/internal/core/domain"

// CreateOrganizationRequest defines the payload for creating an organization.
type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// UpdateOrganizationRequest defines the payload for updating an organization.
type UpdateOrganizationRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// AddMemberRequest adds a user to an organization with a role.
type AddMemberRequest struct {
	UserID string `json:"userID" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// OrganizationResponse is the API representation of an organization.
type OrganizationResponse struct {
	OrganizationID string `json:"organizationID"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	IsActive       bool   `json:"isActive"`
}

// ListOrganizationsResponse wraps a list of organizations.
type ListOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// ToOrganizationResponse converts a domain organization to its API representation.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: o.OrganizationID,
		Name:           o.Name,
		Description:    o.Description,
		IsActive:       o.IsActive,
	}
}
