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

type PgxLeadRepository struct {
	pool *pgxpool.Pool
}

// newPgxLeadRepository creates a new repository for CRM leads.
func newPgxLeadRepository(pool *pgxpool.Pool) portsrepo.LeadRepository {
	return &PgxLeadRepository{pool: pool}
}

// Ensure PgxLeadRepository implements portsrepo.LeadRepository
var _ portsrepo.LeadRepository = (*PgxLeadRepository)(nil)

func toModelLead(d domain.Lead) models.Lead {
	return models.Lead{
		LeadID:         d.LeadID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Status:         string(d.Status),
		Notes:          d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
}

func toDomainLead(m models.Lead) domain.Lead {
	return domain.Lead{
		LeadID:         m.LeadID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Status:         domain.LeadStatus(m.Status),
		Notes:          m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}

const leadColumns = `lead_id, organization_id, name, email, phone, status, notes, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanLead(row pgx.Row) (models.Lead, error) {
	var m models.Lead
	err := row.Scan(
		&m.LeadID,
		&m.OrganizationID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

// SaveLead inserts a new lead.
func (r *PgxLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) error {
	m := toModelLead(lead)

	query := `
		INSERT INTO leads (lead_id, organization_id, name, email, phone, status, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.LeadID,
		m.OrganizationID,
		m.Name,
		m.Email,
		m.Phone,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: lead %s already exists", apperrors.ErrDuplicate, m.LeadID)
		}
		return fmt.Errorf("failed to save lead %s: %w", m.LeadID, err)
	}
	return nil
}

// FindLeadByID retrieves a lead by its ID, excluding soft-deleted rows.
func (r *PgxLeadRepository) FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE lead_id = $1 AND deleted_at IS NULL;`

	m, err := scanLead(r.pool.QueryRow(ctx, query, leadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lead %s: %w", leadID, err)
	}

	lead := toDomainLead(m)
	return &lead, nil
}

// ListLeads returns an organization's leads, newest first, optionally
// narrowed to a funnel status.
func (r *PgxLeadRepository) ListLeads(ctx context.Context, organizationID string, status *domain.LeadStatus, limit int, offset int) ([]domain.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE organization_id = $1 AND deleted_at IS NULL AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.pool.Query(ctx, query, organizationID, statusArg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		m, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		leads = append(leads, toDomainLead(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lead rows: %w", err)
	}
	return leads, nil
}

// UpdateLead persists changes to an existing lead.
func (r *PgxLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	m := toModelLead(lead)

	query := `
		UPDATE leads
		SET name = $2, email = $3, phone = $4, status = $5, notes = $6, last_updated_at = $7, last_updated_by = $8
		WHERE lead_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.LeadID,
		m.Name,
		m.Email,
		m.Phone,
		m.Status,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update lead %s: %w", m.LeadID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkLeadDeleted soft-deletes a lead.
func (r *PgxLeadRepository) MarkLeadDeleted(ctx context.Context, leadID string, deletedAt time.Time, deletedBy string) error {
	query := `
		UPDATE leads
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE lead_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, leadID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark lead %s deleted: %w", leadID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
