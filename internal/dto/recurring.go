package dto

import (
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringBillRequest defines the payload for creating a recurring bill.
// RecurrenceDay is the weekday (0-6, Sunday=0) for weekly bills and the
// day-of-month (1-31) for monthly bills; daily and yearly bills ignore it.
type CreateRecurringBillRequest struct {
	Description    string          `json:"description" binding:"required,max=255"`
	Amount         decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Type           string          `json:"type" binding:"required,oneof=income expense"`
	RecurrenceType string          `json:"recurrenceType" binding:"required,oneof=daily weekly monthly yearly"`
	RecurrenceDay  int             `json:"recurrenceDay" binding:"omitempty,min=0,max=31"`
	StartDate      time.Time       `json:"startDate" binding:"required"`
	EndDate        *time.Time      `json:"endDate"`
}

// UpdateRecurringBillRequest defines the payload for updating a recurring bill.
// A nil EndDate means "unchanged"; ClearEndDate returns the bill to open-ended
// recurrence.
type UpdateRecurringBillRequest struct {
	Description    *string          `json:"description" binding:"omitempty,max=255"`
	Amount         *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	RecurrenceType *string          `json:"recurrenceType" binding:"omitempty,oneof=daily weekly monthly yearly"`
	RecurrenceDay  *int             `json:"recurrenceDay" binding:"omitempty,min=0,max=31"`
	EndDate        *time.Time       `json:"endDate"`
	ClearEndDate   bool             `json:"clearEndDate"`
	IsActive       *bool            `json:"isActive"`
}

// RecurringBillResponse is the API representation of a recurring bill.
type RecurringBillResponse struct {
	RecurringBillID string          `json:"recurringBillID"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	RecurrenceType  string          `json:"recurrenceType"`
	RecurrenceDay   int             `json:"recurrenceDay"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
	IsActive        bool            `json:"isActive"`
}

// ListRecurringBillsResponse wraps a list of recurring bills.
type ListRecurringBillsResponse struct {
	RecurringBills []RecurringBillResponse `json:"recurringBills"`
}

// MaterializationRunResponse reports the outcome of a scheduler run.
type MaterializationRunResponse struct {
	Total     int                           `json:"total"`
	Processed int                           `json:"processed"`
	Skipped   int                           `json:"skipped"`
	Errors    []domain.MaterializationError `json:"errors,omitempty"`
}

// ToRecurringBillResponse converts a domain recurring bill to its API representation.
func ToRecurringBillResponse(b *domain.RecurringBill) RecurringBillResponse {
	return RecurringBillResponse{
		RecurringBillID: b.RecurringBillID,
		Description:     b.Description,
		Amount:          b.Amount,
		Type:            string(b.Type),
		RecurrenceType:  string(b.RecurrenceType),
		RecurrenceDay:   b.RecurrenceDay,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		IsActive:        b.IsActive,
	}
}

// ToMaterializationRunResponse converts run stats to the API shape.
func ToMaterializationRunResponse(s *domain.MaterializationStats) MaterializationRunResponse {
	return MaterializationRunResponse{
		Total:     s.Total,
		Processed: s.Processed,
		Skipped:   s.Skipped,
		Errors:    s.Errors,
	}
}
