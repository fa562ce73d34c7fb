package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row in the transactions table.
// AccountID is a nullable FK: manual entries may not reference a bank account.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	OrganizationID string          `db:"organization_id"`
	AccountID      sql.NullString  `db:"account_id"`
	Description    string          `db:"description"`
	Amount         decimal.Decimal `db:"amount"`
	Type           string          `db:"type"`
	Status         string          `db:"status"`
	DueDate        time.Time       `db:"due_date"`
	Notes          string          `db:"notes"`
	AuditFields
}
