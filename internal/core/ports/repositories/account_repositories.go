package repositories

import (
	"context"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// BankAccountRepository defines persistence operations for bank accounts.
type BankAccountRepository interface {
	SaveAccount(ctx context.Context, account domain.BankAccount) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.BankAccount, error)
	ListAccounts(ctx context.Context, organizationID string, limit int, offset int) ([]domain.BankAccount, error)
	UpdateAccount(ctx context.Context, account domain.BankAccount) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}
