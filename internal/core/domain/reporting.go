package domain

import "github.com/shopspring/decimal"

// CategoryAmount is a description/amount pair used in summary rankings.
type CategoryAmount struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// MonthlyTrendPoint is one month of aggregated income and expense.
type MonthlyTrendPoint struct {
	Month   string          `json:"month"` // "2006-01" format
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// FinancialSummary is the aggregate snapshot an organization sees on its
// dashboard and the structured context forwarded to the AI assistant.
type FinancialSummary struct {
	TotalIncome  decimal.Decimal     `json:"totalIncome"`
	TotalExpense decimal.Decimal     `json:"totalExpense"`
	Balance      decimal.Decimal     `json:"balance"`
	TopExpenses  []CategoryAmount    `json:"topExpenses"`
	TopIncomes   []CategoryAmount    `json:"topIncomes"`
	MonthlyTrend []MonthlyTrendPoint `json:"monthlyTrend"`
}
