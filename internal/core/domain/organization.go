package domain

import "time"

// Organization is the tenant boundary: every bank account, transaction,
// recurring bill and lead belongs to exactly one organization.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary Key (UUID)
	Name           string `json:"name"`
	Description    string `json:"description"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}

// UserOrganizationRole defines the possible roles a user can have within an organization.
type UserOrganizationRole string

const (
	RoleAdmin    UserOrganizationRole = "ADMIN"
	RoleMember   UserOrganizationRole = "MEMBER"
	RoleReadOnly UserOrganizationRole = "READONLY"
	RoleRemoved  UserOrganizationRole = "REMOVED"
)

// UserOrganization represents the membership of a User in an Organization.
type UserOrganization struct {
	UserID         string               `json:"userID"`
	UserName       string               `json:"userName"`
	OrganizationID string               `json:"organizationID"`
	Role           UserOrganizationRole `json:"role"`
	JoinedAt       time.Time            `json:"joinedAt"`
}

// Satisfies reports whether the role grants at least the privileges of required.
// READONLY < MEMBER < ADMIN; REMOVED satisfies nothing.
func (r UserOrganizationRole) Satisfies(required UserOrganizationRole) bool {
	rank := map[UserOrganizationRole]int{
		RoleReadOnly: 1,
		RoleMember:   2,
		RoleAdmin:    3,
	}
	have, ok := rank[r]
	if !ok {
		return false
	}
	want, ok := rank[required]
	if !ok {
		return false
	}
	return have >= want
}
