package dto

import (
	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the payload for creating a bank account.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	BankName       string          `json:"bankName" binding:"omitempty,max=100"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,len=3"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// UpdateAccountRequest defines the payload for updating a bank account.
type UpdateAccountRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	BankName *string `json:"bankName" binding:"omitempty,max=100"`
	IsActive *bool   `json:"isActive"`
}

// ListAccountsParams are the query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// AccountResponse is the API representation of a bank account.
type AccountResponse struct {
	AccountID    string          `json:"accountID"`
	Name         string          `json:"name"`
	BankName     string          `json:"bankName"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	IsActive     bool            `json:"isActive"`
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain bank account to its API representation.
func ToAccountResponse(a *domain.BankAccount) AccountResponse {
	return AccountResponse{
		AccountID:    a.AccountID,
		Name:         a.Name,
		BankName:     a.BankName,
		CurrencyCode: a.CurrencyCode,
		Balance:      a.Balance,
		IsActive:     a.IsActive,
	}
}
