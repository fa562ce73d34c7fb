package services

import (
	"context"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger entries
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction.
	GetTransactionByID(ctx context.Context, organizationID string, transactionID string, userID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, token-paginated page of transactions.
	ListTransactions(ctx context.Context, organizationID string, filter repositories.TransactionListFilter, userID string) ([]domain.Transaction, string, error)
}

// TransactionWriterSvc defines write operations for ledger entries
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction.
	CreateTransaction(ctx context.Context, organizationID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransactionStatus changes the payment state of a transaction.
	UpdateTransactionStatus(ctx context.Context, organizationID string, transactionID string, status domain.TransactionStatus, userID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
