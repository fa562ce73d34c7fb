package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	"github.com/aidaadigitall/escfinan-sub003/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

// newPgxOrganizationRepository creates a new repository for organization data.
func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepository {
	return &PgxOrganizationRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxOrganizationRepository implements portsrepo.OrganizationRepository
var _ portsrepo.OrganizationRepository = (*PgxOrganizationRepository)(nil)

func toDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Description:    m.Description,
		IsActive:       m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveOrganization inserts an organization and the creator's admin membership
// in a single transaction.
func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization, creatorMembership domain.UserOrganization) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	orgQuery := `
		INSERT INTO organizations (organization_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := tx.Exec(ctx, orgQuery,
		org.OrganizationID,
		org.Name,
		org.Description,
		org.IsActive,
		org.CreatedAt,
		org.CreatedBy,
		org.LastUpdatedAt,
		org.LastUpdatedBy,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: organization %s already exists", apperrors.ErrDuplicate, org.OrganizationID)
		}
		return fmt.Errorf("failed to save organization %s: %w", org.OrganizationID, err)
	}

	memberQuery := `
		INSERT INTO user_organizations (user_id, organization_id, role, joined_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := tx.Exec(ctx, memberQuery,
		creatorMembership.UserID,
		creatorMembership.OrganizationID,
		string(creatorMembership.Role),
		creatorMembership.JoinedAt,
		org.CreatedAt,
		org.CreatedBy,
		org.LastUpdatedAt,
		org.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to save creator membership for organization %s: %w", org.OrganizationID, err)
	}

	return r.Commit(ctx, tx)
}

// FindOrganizationByID retrieves an organization by its ID.
func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM organizations
		WHERE organization_id = $1;
	`
	var m models.Organization
	err := r.Pool.QueryRow(ctx, query, organizationID).Scan(
		&m.OrganizationID,
		&m.Name,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization %s: %w", organizationID, err)
	}

	org := toDomainOrganization(m)
	return &org, nil
}

// UpdateOrganization updates an organization's mutable fields.
func (r *PgxOrganizationRepository) UpdateOrganization(ctx context.Context, org domain.Organization) error {
	query := `
		UPDATE organizations
		SET name = $2, description = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE organization_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		org.OrganizationID,
		org.Name,
		org.Description,
		org.IsActive,
		org.LastUpdatedAt,
		org.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update organization %s: %w", org.OrganizationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListOrganizationsByUser retrieves the organizations a user is a member of.
func (r *PgxOrganizationRepository) ListOrganizationsByUser(ctx context.Context, userID string) ([]domain.Organization, error) {
	query := `
		SELECT o.organization_id, o.name, o.description, o.is_active, o.created_at, o.created_by, o.last_updated_at, o.last_updated_by
		FROM organizations o
		JOIN user_organizations uo ON uo.organization_id = o.organization_id
		WHERE uo.user_id = $1 AND uo.role != 'REMOVED'
		ORDER BY o.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations for user %s: %w", userID, err)
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var m models.Organization
		if err := rows.Scan(
			&m.OrganizationID,
			&m.Name,
			&m.Description,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan organization row: %w", err)
		}
		orgs = append(orgs, toDomainOrganization(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organization rows: %w", err)
	}
	return orgs, nil
}

// AddUserToOrganization upserts a membership row. Re-adding a removed member
// restores them with the new role.
func (r *PgxOrganizationRepository) AddUserToOrganization(ctx context.Context, membership domain.UserOrganization) error {
	query := `
		INSERT INTO user_organizations (user_id, organization_id, role, joined_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $4, $1, $4, $1)
		ON CONFLICT (user_id, organization_id)
		DO UPDATE SET role = EXCLUDED.role, last_updated_at = EXCLUDED.last_updated_at, last_updated_by = EXCLUDED.last_updated_by;
	`
	if _, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.OrganizationID,
		string(membership.Role),
		membership.JoinedAt,
	); err != nil {
		return fmt.Errorf("failed to add user %s to organization %s: %w", membership.UserID, membership.OrganizationID, err)
	}
	return nil
}

// FindUserRole returns the caller's role in the organization.
func (r *PgxOrganizationRepository) FindUserRole(ctx context.Context, userID, organizationID string) (domain.UserOrganizationRole, error) {
	query := `
		SELECT role FROM user_organizations
		WHERE user_id = $1 AND organization_id = $2;
	`
	var role string
	err := r.Pool.QueryRow(ctx, query, userID, organizationID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find role for user %s in organization %s: %w", userID, organizationID, err)
	}
	return domain.UserOrganizationRole(role), nil
}
