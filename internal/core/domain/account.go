package domain

import "github.com/shopspring/decimal"

// BankAccount represents a bank or cash account owned by an organization.
type BankAccount struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	BankName       string          `json:"bankName"`
	CurrencyCode   string          `json:"currencyCode"` // e.g. "BRL"
	Balance        decimal.Decimal `json:"balance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
