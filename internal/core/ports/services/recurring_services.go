package services

import (
	"context"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/aidaadigitall/escfinan-sub003/internal/dto"
)

// RecurringReaderSvc defines read operations for recurring bills
type RecurringReaderSvc interface {
	// GetRecurringBillByID retrieves a specific recurring bill.
	GetRecurringBillByID(ctx context.Context, organizationID string, recurringBillID string, userID string) (*domain.RecurringBill, error)

	// ListRecurringBills retrieves all recurring bills for an organization.
	ListRecurringBills(ctx context.Context, organizationID string, userID string) ([]domain.RecurringBill, error)
}

// RecurringWriterSvc defines write operations for recurring bills
type RecurringWriterSvc interface {
	// CreateRecurringBill persists a new recurring bill.
	CreateRecurringBill(ctx context.Context, organizationID string, req dto.CreateRecurringBillRequest, userID string) (*domain.RecurringBill, error)

	// UpdateRecurringBill updates an existing recurring bill.
	UpdateRecurringBill(ctx context.Context, organizationID string, recurringBillID string, req dto.UpdateRecurringBillRequest, userID string) (*domain.RecurringBill, error)

	// DeactivateRecurringBill marks a recurring bill as inactive.
	DeactivateRecurringBill(ctx context.Context, organizationID string, recurringBillID string, userID string) error
}

// RecurringMaterializerSvc runs the scheduled job that turns due recurring
// bills into pending transactions.
type RecurringMaterializerSvc interface {
	// RunMaterialization processes every active recurring bill across all
	// organizations for the given run date. Individual definition failures
	// are collected in the stats, never aborting the run.
	RunMaterialization(ctx context.Context, now time.Time) (*domain.MaterializationStats, error)
}

// RecurringSvcFacade combines all recurring-bill service interfaces
type RecurringSvcFacade interface {
	RecurringReaderSvc
	RecurringWriterSvc
	RecurringMaterializerSvc
}
