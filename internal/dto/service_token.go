package dto

import (
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// CreateServiceTokenRequest is the request body for issuing a service token.
type CreateServiceTokenRequest struct {
	Name      string `json:"name" binding:"required,min=3,max=100"`
	ExpiresIn *int64 `json:"expiresIn,omitempty" binding:"omitempty,min=60"` // Seconds
}

// ServiceTokenResponse carries service token metadata, never the token itself.
type ServiceTokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateServiceTokenResponse returns the plaintext token exactly once,
// alongside its metadata.
type CreateServiceTokenResponse struct {
	Token   string               `json:"token"`
	Details ServiceTokenResponse `json:"details"`
}

// ToServiceTokenResponse converts a domain service token to its API representation.
func ToServiceTokenResponse(t *domain.ServiceToken) ServiceTokenResponse {
	return ServiceTokenResponse{
		ID:         t.ID,
		Name:       t.Name,
		LastUsedAt: t.LastUsedAt,
		ExpiresAt:  t.ExpiresAt,
		CreatedAt:  t.CreatedAt,
	}
}
