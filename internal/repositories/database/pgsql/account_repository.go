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

type PgxBankAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxBankAccountRepository creates a new repository for bank account data.
func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountRepository {
	return &PgxBankAccountRepository{pool: pool}
}

// Ensure PgxBankAccountRepository implements portsrepo.BankAccountRepository
var _ portsrepo.BankAccountRepository = (*PgxBankAccountRepository)(nil)

func toModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		AccountID:      d.AccountID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		BankName:       d.BankName,
		CurrencyCode:   d.CurrencyCode,
		Balance:        d.Balance,
		IsActive:       d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		AccountID:      m.AccountID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		BankName:       m.BankName,
		CurrencyCode:   m.CurrencyCode,
		Balance:        m.Balance,
		IsActive:       m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveAccount inserts a new bank account.
func (r *PgxBankAccountRepository) SaveAccount(ctx context.Context, account domain.BankAccount) error {
	m := toModelBankAccount(account)

	query := `
		INSERT INTO bank_accounts (account_id, organization_id, name, bank_name, currency_code, balance, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.OrganizationID,
		m.Name,
		m.BankName,
		m.CurrencyCode,
		m.Balance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves a bank account by its ID.
func (r *PgxBankAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error) {
	query := `
		SELECT account_id, organization_id, name, bank_name, currency_code, balance, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM bank_accounts
		WHERE account_id = $1;
	`
	var m models.BankAccount
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&m.AccountID,
		&m.OrganizationID,
		&m.Name,
		&m.BankName,
		&m.CurrencyCode,
		&m.Balance,
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
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	account := toDomainBankAccount(m)
	return &account, nil
}

// ListAccounts retrieves a paginated list of active accounts for an organization.
func (r *PgxBankAccountRepository) ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.BankAccount, error) {
	query := `
		SELECT account_id, organization_id, name, bank_name, currency_code, balance, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM bank_accounts
		WHERE organization_id = $1 AND is_active = TRUE
		ORDER BY created_at
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, organizationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	var accounts []domain.BankAccount
	for rows.Next() {
		var m models.BankAccount
		if err := rows.Scan(
			&m.AccountID,
			&m.OrganizationID,
			&m.Name,
			&m.BankName,
			&m.CurrencyCode,
			&m.Balance,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainBankAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// UpdateAccount updates a bank account's mutable fields.
func (r *PgxBankAccountRepository) UpdateAccount(ctx context.Context, account domain.BankAccount) error {
	query := `
		UPDATE bank_accounts
		SET name = $2, bank_name = $3, is_active = $4, balance = $5, last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		account.AccountID,
		account.Name,
		account.BankName,
		account.IsActive,
		account.Balance,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateAccount marks an account as inactive.
func (r *PgxBankAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE bank_accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1 AND is_active = TRUE;
	`
	tag, err := r.pool.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
