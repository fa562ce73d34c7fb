package recurrence_test

import (
	"testing"
	"time"

	"github.com/aidaadigitall/escfinan-sub003/internal/core/domain"
	"github.com/aidaadigitall/escfinan-sub003/internal/core/recurrence"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthlyBill(day int, start time.Time) domain.RecurringBill {
	return domain.RecurringBill{
		RecurrenceType: domain.RecurMonthly,
		RecurrenceDay:  day,
		StartDate:      start,
	}
}

func TestShouldTrigger_Window(t *testing.T) {
	end := date(2024, time.June, 30)
	tests := []struct {
		name  string
		bill  domain.RecurringBill
		today time.Time
		want  bool
	}{
		{
			name:  "before start date never triggers, even daily",
			bill:  domain.RecurringBill{RecurrenceType: domain.RecurDaily, StartDate: date(2024, time.May, 1)},
			today: date(2024, time.April, 30),
			want:  false,
		},
		{
			name: "after end date never triggers",
			bill: domain.RecurringBill{
				RecurrenceType: domain.RecurDaily,
				StartDate:      date(2024, time.January, 1),
				EndDate:        &end,
			},
			today: date(2024, time.July, 1),
			want:  false,
		},
		{
			name: "on end date still triggers",
			bill: domain.RecurringBill{
				RecurrenceType: domain.RecurDaily,
				StartDate:      date(2024, time.January, 1),
				EndDate:        &end,
			},
			today: date(2024, time.June, 30),
			want:  true,
		},
		{
			name:  "unknown recurrence type is a defensive no",
			bill:  domain.RecurringBill{RecurrenceType: "fortnightly", StartDate: date(2024, time.January, 1)},
			today: date(2024, time.March, 10),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recurrence.ShouldTrigger(tt.bill, tt.today))
		})
	}
}

func TestShouldTrigger_Weekly(t *testing.T) {
	bill := domain.RecurringBill{
		RecurrenceType: domain.RecurWeekly,
		RecurrenceDay:  1, // Monday, Sunday-indexed
		StartDate:      date(2024, time.January, 1),
	}

	assert.True(t, recurrence.ShouldTrigger(bill, date(2024, time.March, 11))) // a Monday
	assert.False(t, recurrence.ShouldTrigger(bill, date(2024, time.March, 12)))

	bill.RecurrenceDay = 0 // Sunday
	assert.True(t, recurrence.ShouldTrigger(bill, date(2024, time.March, 10)))
}

func TestShouldTrigger_MonthlyClamp(t *testing.T) {
	bill := monthlyBill(31, date(2024, time.January, 1))

	// February (leap year): day 31 clamps to 29.
	assert.True(t, recurrence.ShouldTrigger(bill, date(2024, time.February, 29)))
	assert.False(t, recurrence.ShouldTrigger(bill, date(2024, time.February, 28)))

	// February (non-leap): clamps to 28.
	bill2023 := monthlyBill(31, date(2023, time.January, 1))
	assert.True(t, recurrence.ShouldTrigger(bill2023, date(2023, time.February, 28)))

	// 30-day month: clamps to 30.
	assert.True(t, recurrence.ShouldTrigger(bill, date(2024, time.April, 30)))
	assert.False(t, recurrence.ShouldTrigger(bill, date(2024, time.April, 29)))

	// 31-day month: fires on the 31st only.
	assert.True(t, recurrence.ShouldTrigger(bill, date(2024, time.March, 31)))
	assert.False(t, recurrence.ShouldTrigger(bill, date(2024, time.March, 30)))
}

func TestShouldTrigger_Yearly(t *testing.T) {
	bill := domain.RecurringBill{
		RecurrenceType: domain.RecurYearly,
		StartDate:      date(2022, time.August, 15),
	}

	assert.True(t, recurrence.ShouldTrigger(bill, date(2024, time.August, 15)))
	assert.False(t, recurrence.ShouldTrigger(bill, date(2024, time.August, 14)))
	assert.False(t, recurrence.ShouldTrigger(bill, date(2024, time.September, 15)))
}

func TestDueDate(t *testing.T) {
	tests := []struct {
		name  string
		bill  domain.RecurringBill
		today time.Time
		want  time.Time
	}{
		{
			name:  "daily falls due today",
			bill:  domain.RecurringBill{RecurrenceType: domain.RecurDaily, StartDate: date(2024, time.January, 1)},
			today: date(2024, time.March, 10),
			want:  date(2024, time.March, 10),
		},
		{
			name:  "weekly falls due today",
			bill:  domain.RecurringBill{RecurrenceType: domain.RecurWeekly, RecurrenceDay: 0, StartDate: date(2024, time.January, 1)},
			today: date(2024, time.March, 10),
			want:  date(2024, time.March, 10),
		},
		{
			name:  "monthly day 31 in a 30-day month clamps to 30",
			bill:  monthlyBill(31, date(2024, time.January, 1)),
			today: date(2024, time.April, 12),
			want:  date(2024, time.April, 30),
		},
		{
			name:  "monthly day 31 in non-leap February clamps to 28",
			bill:  monthlyBill(31, date(2023, time.January, 1)),
			today: date(2023, time.February, 3),
			want:  date(2023, time.February, 28),
		},
		{
			name:  "monthly day 31 in leap February clamps to 29",
			bill:  monthlyBill(31, date(2024, time.January, 1)),
			today: date(2024, time.February, 3),
			want:  date(2024, time.February, 29),
		},
		{
			name:  "yearly copies month and day from start date",
			bill:  domain.RecurringBill{RecurrenceType: domain.RecurYearly, StartDate: date(2022, time.August, 15)},
			today: date(2024, time.March, 10),
			want:  date(2024, time.August, 15),
		},
		{
			name:  "unknown type defaults to today",
			bill:  domain.RecurringBill{RecurrenceType: "biweekly", StartDate: date(2024, time.January, 1)},
			today: date(2024, time.March, 10),
			want:  date(2024, time.March, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recurrence.DueDate(tt.bill, tt.today))
		})
	}
}

func TestMonthlyDay10Example(t *testing.T) {
	bill := monthlyBill(10, date(2024, time.January, 1))

	assert.True(t, recurrence.ShouldTrigger(bill, date(2024, time.March, 10)))
	assert.Equal(t, date(2024, time.March, 10), recurrence.DueDate(bill, date(2024, time.March, 10)))
	assert.False(t, recurrence.ShouldTrigger(bill, date(2024, time.March, 11)))
}

func TestMonthWindow(t *testing.T) {
	first, last := recurrence.MonthWindow(date(2024, time.February, 14))
	assert.Equal(t, date(2024, time.February, 1), first)
	assert.Equal(t, date(2024, time.February, 29), last)

	first, last = recurrence.MonthWindow(date(2023, time.April, 1))
	assert.Equal(t, date(2023, time.April, 1), first)
	assert.Equal(t, date(2023, time.April, 30), last)
}
