package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceType is the cadence of a recurring bill.
type RecurrenceType string

const (
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
	RecurYearly  RecurrenceType = "yearly"
)

// RecurringBill describes a periodic financial obligation. The meaning of
// RecurrenceDay depends on RecurrenceType: weekday 0-6 (Sunday=0) for weekly,
// day-of-month 1-31 for monthly. Daily and yearly cadences ignore it; yearly
// bills fire on the month/day of StartDate.
type RecurringBill struct {
	RecurringBillID string          `json:"recurringBillID"` // Primary Key (UUID)
	OrganizationID  string          `json:"organizationID"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Type            EntryType       `json:"type"`
	RecurrenceType  RecurrenceType  `json:"recurrenceType"`
	RecurrenceDay   int             `json:"recurrenceDay"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         *time.Time      `json:"endDate,omitempty"` // No occurrences after this date
	IsActive        bool            `json:"isActive"`
	AuditFields
}

// MaterializationError records a single definition whose materialization failed.
type MaterializationError struct {
	RecurringBillID string `json:"recurringBillID"`
	Message         string `json:"message"`
}

// MaterializationStats summarizes one materializer run.
type MaterializationStats struct {
	Total     int                    `json:"total"`
	Processed int                    `json:"processed"`
	Skipped   int                    `json:"skipped"`
	Errors    []MaterializationError `json:"errors,omitempty"`
}
