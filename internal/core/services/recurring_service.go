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
	"github.com/aidaadigitall/escfinan-sub003/internal/core/recurrence"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
	"github.com/google/uuid"
)

// recurringService implements the RecurringSvcFacade interface, covering both
// definition CRUD and the scheduled materialization run.
type recurringService struct {
	BaseService
	recurringRepo portsrepo.RecurringBillRepository
	txnRepo       portsrepo.TransactionRepository
}

// RecurringServiceOption is a functional option for configuring the recurring service
type RecurringServiceOption func(*recurringService)

// WithRecurringOrganizationAuthorizer adds the organization authorizer dependency
func WithRecurringOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) RecurringServiceOption {
	return func(s *recurringService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// NewRecurringService creates a new recurring-bill service with the provided options
func NewRecurringService(recurringRepo portsrepo.RecurringBillRepository, txnRepo portsrepo.TransactionRepository, options ...RecurringServiceOption) portssvc.RecurringSvcFacade {
	svc := &recurringService{
		recurringRepo: recurringRepo,
		txnRepo:       txnRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure recurringService implements the RecurringSvcFacade interface
var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) CreateRecurringBill(ctx context.Context, organizationID string, req dto.CreateRecurringBillRequest, userID string) (*domain.RecurringBill, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		s.LogError(ctx, err, "User not authorized to create recurring bill",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	if err := validateRecurrenceDay(domain.RecurrenceType(req.RecurrenceType), req.RecurrenceDay); err != nil {
		return nil, err
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("end date precedes start date: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	bill := domain.RecurringBill{
		RecurringBillID: uuid.NewString(),
		OrganizationID:  organizationID,
		Description:     req.Description,
		Amount:          req.Amount,
		Type:            domain.EntryType(req.Type),
		RecurrenceType:  domain.RecurrenceType(req.RecurrenceType),
		RecurrenceDay:   req.RecurrenceDay,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.recurringRepo.SaveRecurringBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to save recurring bill",
			slog.String("recurring_bill_id", bill.RecurringBillID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Recurring bill created successfully",
		slog.String("recurring_bill_id", bill.RecurringBillID),
		slog.String("organization_id", organizationID))
	return &bill, nil
}

func (s *recurringService) GetRecurringBillByID(ctx context.Context, organizationID string, recurringBillID string, userID string) (*domain.RecurringBill, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	bill, err := s.recurringRepo.FindRecurringBillByID(ctx, recurringBillID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find recurring bill by ID",
				slog.String("recurring_bill_id", recurringBillID))
		}
		return nil, err
	}

	if bill.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	return bill, nil
}

func (s *recurringService) ListRecurringBills(ctx context.Context, organizationID string, userID string) ([]domain.RecurringBill, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	bills, err := s.recurringRepo.ListRecurringBills(ctx, organizationID, 0, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring bills",
			slog.String("organization_id", organizationID))
		return nil, err
	}
	if bills == nil {
		return []domain.RecurringBill{}, nil
	}
	return bills, nil
}

func (s *recurringService) UpdateRecurringBill(ctx context.Context, organizationID string, recurringBillID string, req dto.UpdateRecurringBillRequest, userID string) (*domain.RecurringBill, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return nil, err
	}

	bill, err := s.GetRecurringBillByID(ctx, organizationID, recurringBillID, userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Description != nil {
		bill.Description = *req.Description
		updated = true
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		}
		bill.Amount = *req.Amount
		updated = true
	}
	if req.RecurrenceType != nil {
		bill.RecurrenceType = domain.RecurrenceType(*req.RecurrenceType)
		updated = true
	}
	if req.RecurrenceDay != nil {
		bill.RecurrenceDay = *req.RecurrenceDay
		updated = true
	}
	if req.ClearEndDate {
		bill.EndDate = nil
		updated = true
	} else if req.EndDate != nil {
		bill.EndDate = req.EndDate
		updated = true
	}
	if req.IsActive != nil {
		bill.IsActive = *req.IsActive
		updated = true
	}
	if !updated {
		return bill, nil
	}

	if err := validateRecurrenceDay(bill.RecurrenceType, bill.RecurrenceDay); err != nil {
		return nil, err
	}

	now := time.Now()
	bill.LastUpdatedAt = now
	bill.LastUpdatedBy = userID

	if err := s.recurringRepo.UpdateRecurringBill(ctx, *bill); err != nil {
		s.LogError(ctx, err, "Failed to update recurring bill",
			slog.String("recurring_bill_id", recurringBillID))
		return nil, err
	}

	s.LogInfo(ctx, "Recurring bill updated successfully",
		slog.String("recurring_bill_id", recurringBillID))
	return bill, nil
}

func (s *recurringService) DeactivateRecurringBill(ctx context.Context, organizationID string, recurringBillID string, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleMember); err != nil {
		return err
	}

	if _, err := s.GetRecurringBillByID(ctx, organizationID, recurringBillID, userID); err != nil {
		return err
	}

	if err := s.recurringRepo.DeactivateRecurringBill(ctx, recurringBillID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate recurring bill",
			slog.String("recurring_bill_id", recurringBillID))
		return err
	}

	s.LogInfo(ctx, "Recurring bill deactivated successfully",
		slog.String("recurring_bill_id", recurringBillID))
	return nil
}

// RunMaterialization walks every active recurring bill and creates the pending
// transaction for each one that triggers on the run date. A definition that
// already has an entry with the same description due this month is skipped, so
// repeated runs on the same day stay idempotent. Failures are recorded per
// definition and never abort the batch.
func (s *recurringService) RunMaterialization(ctx context.Context, now time.Time) (*domain.MaterializationStats, error) {
	bills, err := s.recurringRepo.ListActiveRecurringBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active recurring bills for materialization")
		return nil, fmt.Errorf("failed to list active recurring bills: %w", err)
	}

	stats := &domain.MaterializationStats{Total: len(bills)}
	monthFirst, monthLast := recurrence.MonthWindow(now)

	for _, bill := range bills {
		if !recurrence.ShouldTrigger(bill, now) {
			stats.Skipped++
			continue
		}

		exists, err := s.txnRepo.ExistsWithDescriptionInRange(ctx, bill.OrganizationID, bill.Description, monthFirst, monthLast)
		if err != nil {
			s.LogError(ctx, err, "Duplicate check failed for recurring bill",
				slog.String("recurring_bill_id", bill.RecurringBillID))
			stats.Errors = append(stats.Errors, domain.MaterializationError{
				RecurringBillID: bill.RecurringBillID,
				Message:         err.Error(),
			})
			continue
		}
		if exists {
			s.LogDebug(ctx, "Recurring bill already materialized this month",
				slog.String("recurring_bill_id", bill.RecurringBillID))
			stats.Skipped++
			continue
		}

		txn := domain.Transaction{
			TransactionID:  uuid.NewString(),
			OrganizationID: bill.OrganizationID,
			Description:    bill.Description,
			Amount:         bill.Amount,
			Type:           bill.Type,
			Status:         domain.StatusPending,
			DueDate:        recurrence.DueDate(bill, now),
			Notes:          domain.RecurringOriginNote,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     bill.CreatedBy,
				LastUpdatedAt: now,
				LastUpdatedBy: bill.CreatedBy,
			},
		}

		if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
			s.LogError(ctx, err, "Failed to materialize recurring bill",
				slog.String("recurring_bill_id", bill.RecurringBillID),
				slog.String("organization_id", bill.OrganizationID))
			stats.Errors = append(stats.Errors, domain.MaterializationError{
				RecurringBillID: bill.RecurringBillID,
				Message:         err.Error(),
			})
			continue
		}

		stats.Processed++
	}

	s.LogInfo(ctx, "Recurring bill materialization run completed",
		slog.Int("total", stats.Total),
		slog.Int("processed", stats.Processed),
		slog.Int("skipped", stats.Skipped),
		slog.Int("errors", len(stats.Errors)))
	return stats, nil
}

// validateRecurrenceDay enforces the per-cadence meaning of RecurrenceDay:
// weekday 0-6 for weekly, day-of-month 1-31 for monthly.
func validateRecurrenceDay(recurrenceType domain.RecurrenceType, day int) error {
	switch recurrenceType {
	case domain.RecurWeekly:
		if day < 0 || day > 6 {
			return fmt.Errorf("weekly recurrence day must be 0-6: %w", apperrors.ErrValidation)
		}
	case domain.RecurMonthly:
		if day < 1 || day > 31 {
			return fmt.Errorf("monthly recurrence day must be 1-31: %w", apperrors.ErrValidation)
		}
	}
	return nil
}
