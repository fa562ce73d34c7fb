package models

import "time"

// Lead represents a row in the leads table.
type Lead struct {
	LeadID         string `db:"lead_id"`
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	Phone          string `db:"phone"`
	Status         string `db:"status"`
	Notes          string `db:"notes"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
