package dto

import (
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// CreateLeadRequest defines the payload for creating a lead.
type CreateLeadRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,max=30"`
	Notes string `json:"notes" binding:"omitempty,max=500"`
}

// UpdateLeadRequest defines the payload for updating a lead.
type UpdateLeadRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Phone  *string `json:"phone" binding:"omitempty,max=30"`
	Status *string `json:"status" binding:"omitempty,oneof=new contacted qualified won lost"`
	Notes  *string `json:"notes" binding:"omitempty,max=500"`
}

// ListLeadsParams are the query parameters for listing leads.
type ListLeadsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=new contacted qualified won lost"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"omitempty,min=0"`
}

// LeadResponse is the API representation of a lead.
type LeadResponse struct {
	LeadID    string    `json:"leadID"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListLeadsResponse wraps a list of leads.
type ListLeadsResponse struct {
	Leads []LeadResponse `json:"leads"`
}

// ToLeadResponse converts a domain lead to its API representation.
func ToLeadResponse(l *domain.Lead) LeadResponse {
	return LeadResponse{
		LeadID:    l.LeadID,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Status:    string(l.Status),
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
	}
}
