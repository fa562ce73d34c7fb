package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/apperrors"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepository
	accountRepo portsrepo.BankAccountRepository
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionOrganizationAuthorizer adds the organization authorizer dependency
func WithTransactionOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) TransactionServiceOption {
	return func(s *transactionService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// WithTransactionAccountRepository adds the bank account repository so created
// entries can be validated against existing accounts
func WithTransactionAccountRepository(repo portsrepo.BankAccountRepository) TransactionServiceOption {
	return func(s *transactionService) {
		s.accountRepo = repo
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepository, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, organizationID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create transaction",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	// When an account is referenced it must exist in the same organization
	if req.AccountID != "" && s.accountRepo != nil {
		account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to find account for transaction",
				slog.String("account_id", req.AccountID))
			return nil, fmt.Errorf("invalid account: %w", err)
		}
		if account.OrganizationID != organizationID {
			return nil, fmt.Errorf("account belongs to different organization: %w", apperrors.ErrValidation)
		}
	}

	status := domain.StatusPending
	if req.Status != "" {
		status = domain.TransactionStatus(req.Status)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		OrganizationID: organizationID,
		AccountID:      req.AccountID,
		Description:    req.Description,
		Amount:         req.Amount,
		Type:           domain.EntryType(req.Type),
		Status:         status,
		DueDate:        req.DueDate,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("organization_id", organizationID))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, organizationID string, transactionID string, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID",
				slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	if txn.OrganizationID != organizationID {
		s.LogDebug(ctx, "Transaction found but belongs to different organization",
			slog.String("transaction_id", transactionID),
			slog.String("transaction_organization", txn.OrganizationID),
			slog.String("requested_organization", organizationID))
		return nil, apperrors.ErrNotFound
	}

	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, organizationID string, filter portsrepo.TransactionListFilter, userID string) ([]domain.Transaction, string, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, "", err
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, organizationID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.String("organization_id", organizationID))
		return nil, "", fmt.Errorf("failed to list transactions for organization %s: %w", organizationID, err)
	}

	if txns == nil {
		txns = []domain.Transaction{}
	}

	s.LogDebug(ctx, "Transactions listed successfully",
		slog.Int("count", len(txns)),
		slog.String("organization_id", organizationID))
	return txns, nextToken, nil
}

func (s *transactionService) UpdateTransactionStatus(ctx context.Context, organizationID string, transactionID string, status domain.TransactionStatus, userID string) (*domain.Transaction, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	// Verify the entry exists and belongs to this organization
	if _, err := s.GetTransactionByID(ctx, organizationID, transactionID, userID); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, status, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update transaction status",
			slog.String("transaction_id", transactionID),
			slog.String("status", string(status)))
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction status updated successfully",
		slog.String("transaction_id", transactionID),
		slog.String("status", string(status)))
	return txn, nil
}
