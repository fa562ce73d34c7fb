package dto

import (
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for creating a ledger entry.
type CreateTransactionRequest struct {
	AccountID   string          `json:"accountID" binding:"omitempty,uuid"`
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Status      string          `json:"status" binding:"omitempty,oneof=pending paid received overdue"`
	DueDate     time.Time       `json:"dueDate" binding:"required"`
	Notes       string          `json:"notes" binding:"omitempty,max=500"`
}

// UpdateTransactionStatusRequest changes the payment state of an entry.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid received overdue"`
}

// ListTransactionsParams are the query parameters for listing transactions.
type ListTransactionsParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=pending paid received overdue"`
	Type      string `form:"type" binding:"omitempty,oneof=income expense"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse is the API representation of a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID,omitempty"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	DueDate       time.Time       `json:"dueDate"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain transaction to its API representation.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Description:   t.Description,
		Amount:        t.Amount,
		Type:          string(t.Type),
		Status:        string(t.Status),
		DueDate:       t.DueDate,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
	}
}
