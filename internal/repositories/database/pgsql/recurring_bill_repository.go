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

type PgxRecurringBillRepository struct {
	pool *pgxpool.Pool
}

// newPgxRecurringBillRepository creates a new repository for recurring bill definitions.
func newPgxRecurringBillRepository(pool *pgxpool.Pool) portsrepo.RecurringBillRepository {
	return &PgxRecurringBillRepository{pool: pool}
}

// Ensure PgxRecurringBillRepository implements portsrepo.RecurringBillRepository
var _ portsrepo.RecurringBillRepository = (*PgxRecurringBillRepository)(nil)

func toModelRecurringBill(d domain.RecurringBill) models.RecurringBill {
	return models.RecurringBill{
		RecurringBillID: d.RecurringBillID,
		OrganizationID:  d.OrganizationID,
		Description:     d.Description,
		Amount:          d.Amount,
		Type:            string(d.Type),
		RecurrenceType:  string(d.RecurrenceType),
		RecurrenceDay:   d.RecurrenceDay,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		IsActive:        d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainRecurringBill(m models.RecurringBill) domain.RecurringBill {
	return domain.RecurringBill{
		RecurringBillID: m.RecurringBillID,
		OrganizationID:  m.OrganizationID,
		Description:     m.Description,
		Amount:          m.Amount,
		Type:            domain.EntryType(m.Type),
		RecurrenceType:  domain.RecurrenceType(m.RecurrenceType),
		RecurrenceDay:   m.RecurrenceDay,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		IsActive:        m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const recurringBillColumns = `recurring_bill_id, organization_id, description, amount, type, recurrence_type, recurrence_day, start_date, end_date, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanRecurringBill(row pgx.Row) (models.RecurringBill, error) {
	var m models.RecurringBill
	err := row.Scan(
		&m.RecurringBillID,
		&m.OrganizationID,
		&m.Description,
		&m.Amount,
		&m.Type,
		&m.RecurrenceType,
		&m.RecurrenceDay,
		&m.StartDate,
		&m.EndDate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRecurringBill inserts a new recurring bill definition.
func (r *PgxRecurringBillRepository) SaveRecurringBill(ctx context.Context, bill domain.RecurringBill) error {
	m := toModelRecurringBill(bill)

	query := `
		INSERT INTO recurring_bills (recurring_bill_id, organization_id, description, amount, type, recurrence_type, recurrence_day, start_date, end_date, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.RecurringBillID,
		m.OrganizationID,
		m.Description,
		m.Amount,
		m.Type,
		m.RecurrenceType,
		m.RecurrenceDay,
		m.StartDate,
		m.EndDate,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: recurring bill %s already exists", apperrors.ErrDuplicate, m.RecurringBillID)
		}
		return fmt.Errorf("failed to save recurring bill %s: %w", m.RecurringBillID, err)
	}
	return nil
}

// FindRecurringBillByID retrieves a definition by its ID.
func (r *PgxRecurringBillRepository) FindRecurringBillByID(ctx context.Context, recurringBillID string) (*domain.RecurringBill, error) {
	query := `SELECT ` + recurringBillColumns + ` FROM recurring_bills WHERE recurring_bill_id = $1;`

	m, err := scanRecurringBill(r.pool.QueryRow(ctx, query, recurringBillID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring bill %s: %w", recurringBillID, err)
	}

	bill := toDomainRecurringBill(m)
	return &bill, nil
}

// ListRecurringBills returns an organization's definitions, active first.
func (r *PgxRecurringBillRepository) ListRecurringBills(ctx context.Context, organizationID string, limit int, offset int) ([]domain.RecurringBill, error) {
	query := `
		SELECT ` + recurringBillColumns + `
		FROM recurring_bills
		WHERE organization_id = $1
		ORDER BY is_active DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring bills for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	return collectRecurringBills(rows)
}

// ListActiveRecurringBills returns every active definition across all
// organizations. Definitions whose end date has passed are excluded here so
// the materializer never sees them.
func (r *PgxRecurringBillRepository) ListActiveRecurringBills(ctx context.Context) ([]domain.RecurringBill, error) {
	query := `
		SELECT ` + recurringBillColumns + `
		FROM recurring_bills
		WHERE is_active = TRUE AND (end_date IS NULL OR end_date >= NOW())
		ORDER BY organization_id, created_at;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active recurring bills: %w", err)
	}
	defer rows.Close()

	return collectRecurringBills(rows)
}

func collectRecurringBills(rows pgx.Rows) ([]domain.RecurringBill, error) {
	var bills []domain.RecurringBill
	for rows.Next() {
		m, err := scanRecurringBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring bill row: %w", err)
		}
		bills = append(bills, toDomainRecurringBill(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring bill rows: %w", err)
	}
	return bills, nil
}

// UpdateRecurringBill persists changes to an existing definition.
func (r *PgxRecurringBillRepository) UpdateRecurringBill(ctx context.Context, bill domain.RecurringBill) error {
	m := toModelRecurringBill(bill)

	query := `
		UPDATE recurring_bills
		SET description = $2, amount = $3, type = $4, recurrence_type = $5, recurrence_day = $6,
		    start_date = $7, end_date = $8, is_active = $9, last_updated_at = $10, last_updated_by = $11
		WHERE recurring_bill_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.RecurringBillID,
		m.Description,
		m.Amount,
		m.Type,
		m.RecurrenceType,
		m.RecurrenceDay,
		m.StartDate,
		m.EndDate,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring bill %s: %w", m.RecurringBillID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateRecurringBill stops future materialization of a definition.
func (r *PgxRecurringBillRepository) DeactivateRecurringBill(ctx context.Context, recurringBillID string, userID string, now time.Time) error {
	query := `
		UPDATE recurring_bills
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE recurring_bill_id = $1 AND is_active = TRUE;
	`
	tag, err := r.pool.Exec(ctx, query, recurringBillID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate recurring bill %s: %w", recurringBillID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
