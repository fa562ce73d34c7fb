package repositories

import (
	"context"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines read-only aggregation queries over the ledger.
type ReportingRepository interface {
	// GetTotals returns summed income and expense for entries due in [from, to].
	GetTotals(ctx context.Context, organizationID string, from, to time.Time) (income decimal.Decimal, expense decimal.Decimal, err error)
	// GetTopEntries returns the largest entries of the given type in [from, to],
	// grouped by description, descending by total amount.
	GetTopEntries(ctx context.Context, organizationID string, entryType domain.EntryType, from, to time.Time, limit int) ([]domain.CategoryAmount, error)
	// GetMonthlyTrend returns per-month income/expense aggregates for the
	// trailing months window ending at ref.
	GetMonthlyTrend(ctx context.Context, organizationID string, ref time.Time, months int) ([]domain.MonthlyTrendPoint, error)
}
