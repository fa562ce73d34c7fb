package dto

import (
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChatMessage is one prior turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system"`
	Content string `json:"content" binding:"required"`
}

// ChatRequest defines the payload for the assistant chat endpoint. SystemData
// optionally carries a financial snapshot prepared by the frontend, in the
// same aggregate shape the insights endpoint accepts.
type ChatRequest struct {
	Message             string            `json:"message" binding:"required,max=2000"`
	SystemData          *InsightsAnalysis `json:"systemData"`
	ConversationHistory []ChatMessage     `json:"conversationHistory" binding:"omitempty,max=20,dive"`
}

// AnalysisEntry is a description/amount pair inside an insights analysis.
type AnalysisEntry struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// AnalysisTrendPoint is one month of aggregated totals inside an insights analysis.
type AnalysisTrendPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// InsightsAnalysis is the aggregate snapshot the insights endpoint reasons over.
type InsightsAnalysis struct {
	TotalIncome  decimal.Decimal      `json:"totalIncome"`
	TotalExpense decimal.Decimal      `json:"totalExpense"`
	Balance      decimal.Decimal      `json:"balance"`
	TopExpenses  []AnalysisEntry      `json:"topExpenses"`
	TopIncomes   []AnalysisEntry      `json:"topIncomes"`
	MonthlyTrend []AnalysisTrendPoint `json:"monthlyTrend"`
}

// InsightsRequest defines the payload for the insights endpoint. When the
// analysis block is omitted the server computes it from the ledger.
type InsightsRequest struct {
	Analysis *InsightsAnalysis `json:"analysis"`
}

// ChatResponse is the relayed assistant answer and its classification.
type ChatResponse struct {
	Response string `json:"response"`
	Type     string `json:"type"`
}

// InsightsResponse wraps the generated insights text.
type InsightsResponse struct {
	Insights string `json:"insights"`
}

// ToChatResponse converts a domain assistant reply to its API shape.
func ToChatResponse(r *domain.AssistantReply) ChatResponse {
	return ChatResponse{
		Response: r.Response,
		Type:     string(r.Type),
	}
}

// ToFinancialSummary converts the request analysis to the domain summary shape.
func (a *InsightsAnalysis) ToFinancialSummary() *domain.FinancialSummary {
	summary := &domain.FinancialSummary{
		TotalIncome:  a.TotalIncome,
		TotalExpense: a.TotalExpense,
		Balance:      a.Balance,
	}
	for _, e := range a.TopExpenses {
		summary.TopExpenses = append(summary.TopExpenses, domain.CategoryAmount{Description: e.Description, Amount: e.Amount})
	}
	for _, i := range a.TopIncomes {
		summary.TopIncomes = append(summary.TopIncomes, domain.CategoryAmount{Description: i.Description, Amount: i.Amount})
	}
	for _, p := range a.MonthlyTrend {
		summary.MonthlyTrend = append(summary.MonthlyTrend, domain.MonthlyTrendPoint{Month: p.Month, Income: p.Income, Expense: p.Expense})
	}
	return summary
}
