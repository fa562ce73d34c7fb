package domain

import "time"

// ServiceToken authenticates non-interactive callers (scheduled jobs).
type ServiceToken struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	TokenHash  string     `json:"-"` // Never expose the hash in JSON responses
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"-"`
}

// IsExpired checks if the token has expired or been revoked.
func (t *ServiceToken) IsExpired() bool {
	if t.RevokedAt != nil {
		return true
	}
	if t.ExpiresAt == nil {
		return false
	}
	return t.ExpiresAt.Before(time.Now())
}
