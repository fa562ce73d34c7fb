package services

import (
	"context"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
)

// AccountReaderSvc defines read operations for bank account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, organizationID string, accountID string, userID string) (*domain.BankAccount, error)

	// ListAccounts retrieves a paginated list of accounts for a given organization.
	ListAccounts(ctx context.Context, organizationID string, limit int, offset int, userID string) ([]domain.BankAccount, error)
}

// AccountWriterSvc defines write operations for bank account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, userID string) (*domain.BankAccount, error)

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, organizationID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.BankAccount, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, organizationID string, accountID string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
