package dto

import "github.com/aidaadigitall/escfinan-sub003/internal/core/domain"

// SummaryParams are the query parameters for the financial summary.
type SummaryParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// SummaryResponse is the API representation of the financial summary.
type SummaryResponse struct {
	TotalIncome  string              `json:"totalIncome"`
	TotalExpense string              `json:"totalExpense"`
	Balance      string              `json:"balance"`
	TopExpenses  []CategoryAmount    `json:"topExpenses"`
	TopIncomes   []CategoryAmount    `json:"topIncomes"`
	MonthlyTrend []MonthlyTrendPoint `json:"monthlyTrend"`
}

// CategoryAmount is a description/amount pair in a summary ranking.
type CategoryAmount struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// MonthlyTrendPoint is one month of aggregated totals.
type MonthlyTrendPoint struct {
	Month   string `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// ToSummaryResponse converts a domain summary to its API representation.
// Decimal values are serialized as fixed-point strings with two places so
// clients never see float artifacts.
func ToSummaryResponse(s *domain.FinancialSummary) SummaryResponse {
	resp := SummaryResponse{
		TotalIncome:  s.TotalIncome.StringFixed(2),
		TotalExpense: s.TotalExpense.StringFixed(2),
		Balance:      s.Balance.StringFixed(2),
		TopExpenses:  make([]CategoryAmount, 0, len(s.TopExpenses)),
		TopIncomes:   make([]CategoryAmount, 0, len(s.TopIncomes)),
		MonthlyTrend: make([]MonthlyTrendPoint, 0, len(s.MonthlyTrend)),
	}
	for _, e := range s.TopExpenses {
		resp.TopExpenses = append(resp.TopExpenses, CategoryAmount{Description: e.Description, Amount: e.Amount.StringFixed(2)})
	}
	for _, i := range s.TopIncomes {
		resp.TopIncomes = append(resp.TopIncomes, CategoryAmount{Description: i.Description, Amount: i.Amount.StringFixed(2)})
	}
	for _, p := range s.MonthlyTrend {
		resp.MonthlyTrend = append(resp.MonthlyTrend, MonthlyTrendPoint{
			Month:   p.Month,
			Income:  p.Income.StringFixed(2),
			Expense: p.Expense.StringFixed(2),
		})
	}
	return resp
}
