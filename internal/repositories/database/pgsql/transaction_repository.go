package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	"github.com/aidaadigitall/escfinan-sub003/internal/models"
	"github.com/aidaadigitall/escfinan-sub003/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTransactionPageSize = 20

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransactionRepository creates a new repository for ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:  d.TransactionID,
		OrganizationID: d.OrganizationID,
		Description:    d.Description,
		Amount:         d.Amount,
		Type:           string(d.Type),
		Status:         string(d.Status),
		DueDate:        d.DueDate,
		Notes:          d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.AccountID != "" {
		m.AccountID = sql.NullString{String: d.AccountID, Valid: true}
	}
	return m
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID:  m.TransactionID,
		OrganizationID: m.OrganizationID,
		Description:    m.Description,
		Amount:         m.Amount,
		Type:           domain.EntryType(m.Type),
		Status:         domain.TransactionStatus(m.Status),
		DueDate:        m.DueDate,
		Notes:          m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.AccountID.Valid {
		d.AccountID = m.AccountID.String
	}
	return d
}

const transactionColumns = `transaction_id, organization_id, account_id, description, amount, type, status, due_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OrganizationID,
		&m.AccountID,
		&m.Description,
		&m.Amount,
		&m.Type,
		&m.Status,
		&m.DueDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction inserts a new ledger entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, organization_id, account_id, description, amount, type, status, due_date, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.OrganizationID,
		m.AccountID,
		m.Description,
		m.Amount,
		m.Type,
		m.Status,
		m.DueDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a ledger entry by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := toDomainTransaction(m)
	return &txn, nil
}

// ListTransactions returns a filtered page of entries ordered by
// (due_date, created_at) descending, with an opaque keyset cursor.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, organizationID string, filter portsrepo.TransactionListFilter) ([]domain.Transaction, string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE organization_id = $1`)
	args := []any{organizationID}

	appendArg := func(clause string, value any) {
		args = append(args, value)
		sb.WriteString(" AND " + clause + "$" + strconv.Itoa(len(args)))
	}

	if filter.Status != nil {
		appendArg("status = ", string(*filter.Status))
	}
	if filter.Type != nil {
		appendArg("type = ", string(*filter.Type))
	}
	if filter.From != nil {
		appendArg("due_date >= ", *filter.From)
	}
	if filter.To != nil {
		appendArg("due_date <= ", *filter.To)
	}

	if filter.NextToken != "" {
		dueDate, createdAt, err := pagination.DecodeToken(filter.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, dueDate, createdAt)
		sb.WriteString(fmt.Sprintf(" AND (due_date, created_at) < ($%d, $%d)", len(args)-1, len(args)))
	}

	args = append(args, limit+1)
	sb.WriteString(fmt.Sprintf(" ORDER BY due_date DESC, created_at DESC LIMIT $%d;", len(args)))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating transaction rows: %w", err)
	}

	// One row past the limit means there is a next page
	nextToken := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeToken(last.DueDate, last.CreatedAt)
	}

	return txns, nextToken, nil
}

// UpdateTransactionStatus changes the payment state of an entry.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, userID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, transactionID, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ExistsWithDescriptionInRange reports whether the organization already has an
// entry with this description due inside [from, to]. Used as the
// materializer's duplicate guard.
func (r *PgxTransactionRepository) ExistsWithDescriptionInRange(ctx context.Context, organizationID, description string, from, to time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE organization_id = $1 AND description = $2 AND due_date >= $3 AND due_date <= $4
		);
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, organizationID, description, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed duplicate check for organization %s: %w", organizationID, err)
	}
	return exists, nil
}
