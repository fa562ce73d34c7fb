package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	"github.com/aidaadigitall/escfinan-sub003/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxServiceTokenRepository struct {
	pool *pgxpool.Pool
}

// newPgxServiceTokenRepository creates a new repository for service tokens.
func newPgxServiceTokenRepository(pool *pgxpool.Pool) portsrepo.ServiceTokenRepository {
	return &PgxServiceTokenRepository{pool: pool}
}

// Ensure PgxServiceTokenRepository implements portsrepo.ServiceTokenRepository
var _ portsrepo.ServiceTokenRepository = (*PgxServiceTokenRepository)(nil)

func toDomainServiceToken(m models.ServiceToken) domain.ServiceToken {
	return domain.ServiceToken{
		ID:         m.ID,
		Name:       m.Name,
		TokenHash:  m.TokenHash,
		LastUsedAt: m.LastUsedAt,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
		RevokedAt:  m.RevokedAt,
	}
}

// Create inserts a new service token. Only the hash is stored.
func (r *PgxServiceTokenRepository) Create(ctx context.Context, token *domain.ServiceToken) error {
	query := `
		INSERT INTO service_tokens (id, name, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.pool.Exec(ctx, query, token.ID, token.Name, token.TokenHash, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: service token %s already exists", apperrors.ErrDuplicate, token.ID)
		}
		return fmt.Errorf("failed to create service token %s: %w", token.ID, err)
	}
	return nil
}

// FindByHash finds a token by the hash of its raw value.
func (r *PgxServiceTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*domain.ServiceToken, error) {
	query := `
		SELECT id, name, token_hash, last_used_at, expires_at, created_at, revoked_at
		FROM service_tokens
		WHERE token_hash = $1;
	`
	var m models.ServiceToken
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(
		&m.ID,
		&m.Name,
		&m.TokenHash,
		&m.LastUsedAt,
		&m.ExpiresAt,
		&m.CreatedAt,
		&m.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service token by hash: %w", err)
	}

	token := toDomainServiceToken(m)
	return &token, nil
}

// TouchLastUsed records that the token was just used.
func (r *PgxServiceTokenRepository) TouchLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error {
	query := `UPDATE service_tokens SET last_used_at = $2 WHERE id = $1;`
	tag, err := r.pool.Exec(ctx, query, tokenID, usedAt)
	if err != nil {
		return fmt.Errorf("failed to touch service token %s: %w", tokenID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Revoke permanently disables a token.
func (r *PgxServiceTokenRepository) Revoke(ctx context.Context, tokenID string, revokedAt time.Time) error {
	query := `UPDATE service_tokens SET revoked_at = $2 WHERE id = $1 AND revoked_at IS NULL;`
	tag, err := r.pool.Exec(ctx, query, tokenID, revokedAt)
	if err != nil {
		return fmt.Errorf("failed to revoke service token %s: %w", tokenID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
