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

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.BankAccountRepository
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountOrganizationAuthorizer adds the organization authorizer dependency
func WithAccountOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) AccountServiceOption {
	return func(s *accountService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.BankAccountRepository, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, userID string) (*domain.BankAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create account",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("initial balance must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.BankAccount{
		AccountID:      uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		BankName:       req.BankName,
		CurrencyCode:   req.CurrencyCode,
		Balance:        req.InitialBalance,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("organization_id", organizationID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, organizationID string, accountID string, userID string) (*domain.BankAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other organizations
	if account.OrganizationID != organizationID {
		s.LogDebug(ctx, "Account found but belongs to different organization",
			slog.String("account_id", accountID),
			slog.String("account_organization", account.OrganizationID),
			slog.String("requested_organization", organizationID))
		return nil, apperrors.ErrNotFound
	}

	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, organizationID string, limit int, offset int, userID string) ([]domain.BankAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, organizationID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("organization_id", organizationID),
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts for organization %s: %w", organizationID, err)
	}

	if accounts == nil {
		return []domain.BankAccount{}, nil
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(accounts)),
		slog.String("organization_id", organizationID))
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, organizationID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.BankAccount, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	account, err := s.GetAccountByID(ctx, organizationID, accountID, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.BankName != nil {
		account.BankName = *req.BankName
		updated = true
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update",
			slog.String("account_id", accountID))
		return account, nil
	}

	now := time.Now()
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.String("account_id", account.AccountID),
		slog.String("organization_id", account.OrganizationID))
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, organizationID string, accountID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return err
	}

	// Verify that the account exists and belongs to the organization
	if _, err := s.GetAccountByID(ctx, organizationID, accountID, userID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account",
			slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deactivated successfully",
		slog.String("account_id", accountID),
		slog.String("organization_id", organizationID))
	return nil
}
