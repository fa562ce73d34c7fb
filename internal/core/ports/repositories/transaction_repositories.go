package repositories

import (
	"context"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// TransactionListFilter narrows a transaction listing.
type TransactionListFilter struct {
	Status    *domain.TransactionStatus
	Type      *domain.EntryType
	From      *time.Time // due date lower bound, inclusive
	To        *time.Time // due date upper bound, inclusive
	Limit     int
	NextToken string // opaque keyset cursor; empty for the first page
}

// TransactionRepository defines persistence operations for ledger entries.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ListTransactions returns a page of entries ordered by (due_date,
	// created_at) descending plus the cursor for the next page ("" when
	// exhausted).
	ListTransactions(ctx context.Context, organizationID string, filter TransactionListFilter) ([]domain.Transaction, string, error)
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, userID string, now time.Time) error
	// ExistsWithDescriptionInRange reports whether the organization already
	// has an entry with this description due inside [from, to]. This is the
	// materializer's duplicate guard.
	ExistsWithDescriptionInRange(ctx context.Context, organizationID, description string, from, to time.Time) (bool, error)
}
