package models

import "time"

type BudgetPeriod string

const (
	PeriodWeekly    BudgetPeriod = "Weekly"
	PeriodMonthly   BudgetPeriod = "Monthly"
	PeriodQuarterly BudgetPeriod = "Quarterly"
	PeriodYearly    BudgetPeriod = "Yearly"
)

func (p BudgetPeriod) IsValid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return true
	}
	return false
}

// Window returns the inclusive [start, end] range of the period containing
// reference. end is always reference itself. Unknown periods fall back to
// the monthly window.
func (p BudgetPeriod) Window(reference time.Time) (time.Time, time.Time) {
	year, month, day := reference.Date()
	loc := reference.Location()

	var start time.Time
	switch p {
	case PeriodWeekly:
		start = time.Date(year, month, day-int(reference.Weekday()), 0, 0, 0, 0, loc)
	case PeriodQuarterly:
		quarterMonth := time.Month((int(month)-1)/3*3 + 1)
		start = time.Date(year, quarterMonth, 1, 0, 0, 0, 0, loc)
	case PeriodYearly:
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	default:
		start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	}

	return start, reference
}

// MonthWindow returns the calendar month containing t as [start, next month start).
func MonthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
