package models

import "time"

// ServiceToken represents a row in the service_tokens table. These tokens
// authenticate scheduled jobs rather than interactive users.
type ServiceToken struct {
	ID         string     `db:"id"`
	Name       string     `db:"name"`
	TokenHash  string     `db:"token_hash"`
	LastUsedAt *time.Time `db:"last_used_at"`
	ExpiresAt  *time.Time `db:"expires_at"`
	CreatedAt  time.Time  `db:"created_at"`
	RevokedAt  *time.Time `db:"revoked_at"`
}
