package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/google/uuid"
)

// serviceTokenService implements the ServiceTokenSvc interface. Tokens are
// stored only as SHA-256 hashes; the plaintext exists once, at creation time.
type serviceTokenService struct {
	BaseService
	tokenRepo portsrepo.ServiceTokenRepository
}

// NewServiceTokenService creates a new instance of serviceTokenService
func NewServiceTokenService(tokenRepo portsrepo.ServiceTokenRepository) portssvc.ServiceTokenSvc {
	return &serviceTokenService{
		tokenRepo: tokenRepo,
	}
}

// Ensure serviceTokenService implements the ServiceTokenSvc interface
var _ portssvc.ServiceTokenSvc = (*serviceTokenService)(nil)

// CreateToken generates a new service token
func (s *serviceTokenService) CreateToken(ctx context.Context, name string, expiresIn *time.Duration) (string, *domain.ServiceToken, error) {
	if name == "" {
		return "", nil, errors.New("token name is required")
	}

	plaintext, err := generateServiceTokenString(32)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	var expiresAt *time.Time
	if expiresIn != nil {
		expiry := time.Now().Add(*expiresIn)
		expiresAt = &expiry
	}

	token := &domain.ServiceToken{
		ID:        uuid.NewString(),
		Name:      name,
		TokenHash: hashServiceToken(plaintext),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", nil, fmt.Errorf("failed to save token: %w", err)
	}

	// Plaintext is only available here, never again
	return plaintext, token, nil
}

// ValidateToken checks a plaintext token and returns the name it was issued under.
func (s *serviceTokenService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", apperrors.ErrUnauthorized
	}

	token, err := s.tokenRepo.FindByHash(ctx, hashServiceToken(tokenString))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to look up service token: %w", err)
	}

	if token.IsExpired() {
		return "", apperrors.ErrUnauthorized
	}

	// Best effort; validation still succeeds if the touch fails
	if err := s.tokenRepo.TouchLastUsed(ctx, token.ID, time.Now()); err != nil {
		s.LogDebug(ctx, "Failed to update service token last_used_at")
	}

	return token.Name, nil
}

// RevokeToken revokes a service token
func (s *serviceTokenService) RevokeToken(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return errors.New("token ID is required")
	}

	if err := s.tokenRepo.Revoke(ctx, tokenID, time.Now()); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// generateServiceTokenString generates a secure random token
func generateServiceTokenString(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "esf_" + base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b), nil
}

// hashServiceToken produces the stored lookup hash for a plaintext token.
func hashServiceToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
