package services

import (
	"context"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// FinancialSummary aggregates totals, top entries and the monthly trend
	// for an organization over the given period.
	FinancialSummary(ctx context.Context, organizationID string, from, to time.Time, userID string) (*domain.FinancialSummary, error)
}
