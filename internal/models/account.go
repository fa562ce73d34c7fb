package models

import "github.com/shopspring/decimal"

// BankAccount represents a row in the bank_accounts table.
type BankAccount struct {
	AccountID      string          `db:"account_id"`
	OrganizationID string          `db:"organization_id"`
	Name           string          `db:"name"`
	BankName       string          `db:"bank_name"`
	CurrencyCode   string          `db:"currency_code"`
	Balance        decimal.Decimal `db:"balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
