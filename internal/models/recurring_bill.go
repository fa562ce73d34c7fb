package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringBill represents a row in the recurring_bills table.
type RecurringBill struct {
	RecurringBillID string          `db:"recurring_bill_id"`
	OrganizationID  string          `db:"organization_id"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	Type            string          `db:"type"`
	RecurrenceType  string          `db:"recurrence_type"`
	RecurrenceDay   int             `db:"recurrence_day"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         *time.Time      `db:"end_date"` // Nullable
	IsActive        bool            `db:"is_active"`
	AuditFields
}
