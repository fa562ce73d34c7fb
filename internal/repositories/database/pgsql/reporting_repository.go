package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

// newPgxReportingRepository creates a read-only repository for ledger aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetTotals returns summed income and expense for entries due in [from, to].
func (r *PgxReportingRepository) GetTotals(ctx context.Context, organizationID string, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
		WHERE organization_id = $1 AND due_date >= $2 AND due_date <= $3;
	`
	var income, expense decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, organizationID, from, to).Scan(&income, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to compute totals for organization %s: %w", organizationID, err)
	}
	return income, expense, nil
}

// GetTopEntries returns the largest entries of the given type in [from, to],
// grouped by description, descending by total amount.
func (r *PgxReportingRepository) GetTopEntries(ctx context.Context, organizationID string, entryType domain.EntryType, from, to time.Time, limit int) ([]domain.CategoryAmount, error) {
	query := `
		SELECT description, SUM(amount)
		FROM transactions
		WHERE organization_id = $1 AND type = $2 AND due_date >= $3 AND due_date <= $4
		GROUP BY description
		ORDER BY SUM(amount) DESC
		LIMIT $5;
	`
	rows, err := r.pool.Query(ctx, query, organizationID, string(entryType), from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top %s entries for organization %s: %w", entryType, organizationID, err)
	}
	defer rows.Close()

	var entries []domain.CategoryAmount
	for rows.Next() {
		var e domain.CategoryAmount
		if err := rows.Scan(&e.Description, &e.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan top entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top entry rows: %w", err)
	}
	return entries, nil
}

// GetMonthlyTrend returns per-month income/expense aggregates for the trailing
// months window ending at ref. Months with no entries appear with zero values
// so the series has no gaps.
func (r *PgxReportingRepository) GetMonthlyTrend(ctx context.Context, organizationID string, ref time.Time, months int) ([]domain.MonthlyTrendPoint, error) {
	if months <= 0 {
		return nil, nil
	}

	windowStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	windowEnd := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0).Add(-time.Nanosecond)

	query := `
		SELECT
			to_char(due_date, 'YYYY-MM'),
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)
		FROM transactions
		WHERE organization_id = $1 AND due_date >= $2 AND due_date <= $3
		GROUP BY to_char(due_date, 'YYYY-MM');
	`
	rows, err := r.pool.Query(ctx, query, organizationID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly trend for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	byMonth := make(map[string]domain.MonthlyTrendPoint, months)
	for rows.Next() {
		var p domain.MonthlyTrendPoint
		if err := rows.Scan(&p.Month, &p.Income, &p.Expense); err != nil {
			return nil, fmt.Errorf("failed to scan trend row: %w", err)
		}
		byMonth[p.Month] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trend rows: %w", err)
	}

	trend := make([]domain.MonthlyTrendPoint, 0, months)
	for i := 0; i < months; i++ {
		month := windowStart.AddDate(0, i, 0).Format("2006-01")
		if p, ok := byMonth[month]; ok {
			trend = append(trend, p)
			continue
		}
		trend = append(trend, domain.MonthlyTrendPoint{Month: month, Income: decimal.Zero, Expense: decimal.Zero})
	}
	return trend, nil
}
