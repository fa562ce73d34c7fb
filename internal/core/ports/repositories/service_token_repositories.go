package repositories

import (
	"context"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// ServiceTokenRepository defines persistence for long-lived service tokens
// (used by scheduled jobs). Only token hashes are stored.
type ServiceTokenRepository interface {
	Create(ctx context.Context, token *domain.ServiceToken) error
	// FindByHash finds a token by the hash of its raw value.
	FindByHash(ctx context.Context, tokenHash string) (*domain.ServiceToken, error)
	// TouchLastUsed records that the token was just used.
	TouchLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error
	Revoke(ctx context.Context, tokenID string, revokedAt time.Time) error
}
