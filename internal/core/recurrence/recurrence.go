// Package recurrence decides when a recurring bill produces an occurrence.
//
// All functions are pure: they take a bill definition and a reference date
// and never touch storage or the clock. Month-end overflow is clamped, never
// rolled over: a bill on day 31 fires on Feb 28 (29 in leap years) and on
// Apr 30.
package recurrence

import (
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
)

// dateOnly strips the time-of-day so window comparisons work on calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// lastDayOfMonth returns the number of days in t's month.
func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// clampDay returns day, reduced to the last day of t's month when day
// overflows it.
func clampDay(day int, t time.Time) int {
	if last := lastDayOfMonth(t); day > last {
		return last
	}
	return day
}

// ShouldTrigger reports whether today is a generation trigger day for the
// given bill. It returns false outside the bill's [StartDate, EndDate]
// validity window and for unknown recurrence types.
func ShouldTrigger(bill domain.RecurringBill, today time.Time) bool {
	day := dateOnly(today)
	if day.Before(dateOnly(bill.StartDate)) {
		return false
	}
	if bill.EndDate != nil && day.After(dateOnly(*bill.EndDate)) {
		return false
	}

	switch bill.RecurrenceType {
	case domain.RecurDaily:
		return true
	case domain.RecurWeekly:
		return int(day.Weekday()) == bill.RecurrenceDay
	case domain.RecurMonthly:
		return day.Day() == clampDay(bill.RecurrenceDay, day)
	case domain.RecurYearly:
		start := dateOnly(bill.StartDate)
		return day.Month() == start.Month() && day.Day() == start.Day()
	default:
		return false
	}
}

// DueDate computes the calendar date the generated transaction should carry
// when a bill triggers on today.
func DueDate(bill domain.RecurringBill, today time.Time) time.Time {
	day := dateOnly(today)
	switch bill.RecurrenceType {
	case domain.RecurMonthly:
		return time.Date(day.Year(), day.Month(), clampDay(bill.RecurrenceDay, day), 0, 0, 0, 0, time.UTC)
	case domain.RecurYearly:
		start := dateOnly(bill.StartDate)
		return time.Date(day.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	default:
		// daily, weekly and anything unrecognized fall due today
		return day
	}
}

// MonthWindow returns the first and last day of today's calendar month, the
// range the materializer scans for existing entries.
func MonthWindow(today time.Time) (time.Time, time.Time) {
	day := dateOnly(today)
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(day.Year(), day.Month(), lastDayOfMonth(day), 0, 0, 0, 0, time.UTC)
	return first, last
}
