package domain

import "time"

// LeadStatus tracks a CRM lead through its funnel.
type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadWon       LeadStatus = "won"
	LeadLost      LeadStatus = "lost"
)

// Lead is a CRM prospect belonging to an organization.
type Lead struct {
	LeadID         string     `json:"leadID"` // Primary Key (UUID)
	OrganizationID string     `json:"organizationID"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Status         LeadStatus `json:"status"`
	Notes          string     `json:"notes"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
