package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the payment lifecycle state of a ledger entry.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusPaid     TransactionStatus = "paid"
	StatusReceived TransactionStatus = "received"
	StatusOverdue  TransactionStatus = "overdue"
)

// RecurringOriginNote tags transactions created by the recurring-bill
// materializer so they can be distinguished from manual entries.
const RecurringOriginNote = "generated automatically"

// Transaction is a single accounts-payable/receivable ledger entry.
type Transaction struct {
	TransactionID  string            `json:"transactionID"` // Primary Key (UUID)
	OrganizationID string            `json:"organizationID"`
	AccountID      string            `json:"accountID,omitempty"` // Optional FK -> bank_accounts
	Description    string            `json:"description"`
	Amount         decimal.Decimal   `json:"amount"` // Always positive; direction comes from Type
	Type           EntryType         `json:"type"`
	Status         TransactionStatus `json:"status"`
	DueDate        time.Time         `json:"dueDate"`
	Notes          string            `json:"notes"` // Carries RecurringOriginNote for materialized entries
	AuditFields
}
