package repositories

import (
	"context"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// RecurringBillRepository defines persistence operations for recurring bill
// definitions.
type RecurringBillRepository interface {
	SaveRecurringBill(ctx context.Context, bill domain.RecurringBill) error
	FindRecurringBillByID(ctx context.Context, recurringBillID string) (*domain.RecurringBill, error)
	ListRecurringBills(ctx context.Context, organizationID string, limit int, offset int) ([]domain.RecurringBill, error)
	// ListActiveRecurringBills returns every active definition across all
	// organizations. Used by the materializer batch run.
	ListActiveRecurringBills(ctx context.Context) ([]domain.RecurringBill, error)
	UpdateRecurringBill(ctx context.Context, bill domain.RecurringBill) error
	DeactivateRecurringBill(ctx context.Context, recurringBillID string, userID string, now time.Time) error
}
