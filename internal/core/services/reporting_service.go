package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	portsrepo "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/repositories"
	portssvc "github.com/aidaadigitall/escfinan-sub003/internal/core/ports/services"
)

const (
	summaryTopEntriesLimit  = 5
	summaryTrendMonthsCount = 6
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingOrganizationAuthorizer sets the organization authorizer for the reporting service.
func WithReportingOrganizationAuthorizer(authorizer portssvc.OrganizationAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.OrganizationAuthorizer = authorizer
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// FinancialSummary aggregates totals, top entries and the monthly trend for
// an organization over [from, to].
func (s *reportingService) FinancialSummary(ctx context.Context, organizationID string, from, to time.Time, userID string) (*domain.FinancialSummary, error) {
	// ReadOnly is sufficient for viewing reports
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view financial summary",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	income, expense, err := s.reportingRepo.GetTotals(ctx, organizationID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve summary totals",
			slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to retrieve summary totals: %w", err)
	}

	topExpenses, err := s.reportingRepo.GetTopEntries(ctx, organizationID, domain.EntryExpense, from, to, summaryTopEntriesLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve top expenses",
			slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to retrieve top expenses: %w", err)
	}

	topIncomes, err := s.reportingRepo.GetTopEntries(ctx, organizationID, domain.EntryIncome, from, to, summaryTopEntriesLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve top incomes",
			slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to retrieve top incomes: %w", err)
	}

	trend, err := s.reportingRepo.GetMonthlyTrend(ctx, organizationID, to, summaryTrendMonthsCount)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly trend",
			slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to retrieve monthly trend: %w", err)
	}

	summary := &domain.FinancialSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		TopExpenses:  topExpenses,
		TopIncomes:   topIncomes,
		MonthlyTrend: trend,
	}

	s.LogInfo(ctx, "Financial summary generated successfully",
		slog.String("organization_id", organizationID),
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)))
	return summary, nil
}
