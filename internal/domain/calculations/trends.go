package calculations

import (
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/shopspring/decimal"
)

const (
	DefaultTrendMonths = 6
	MaxTrendMonths     = 24
)

// TrendMonthsForPeriod maps the trends query parameter to a month count.
func TrendMonthsForPeriod(period string) (int, bool) {
	switch period {
	case "", "6months":
		return 6, true
	case "1year":
		return 12, true
	}
	return 0, false
}

// MonthlyTrends builds one entry per calendar month for the last months
// months, oldest first, the last one being the month of now.
func MonthlyTrends(expenses []models.Expense, now time.Time, months int) []models.TrendMonth {
	if months <= 0 {
		return []models.TrendMonth{}
	}

	trends := make([]models.TrendMonth, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		start, end := models.MonthWindow(monthStart)

		total := decimal.Zero
		categories := newCategoryTotals()
		count := 0
		for _, expense := range expenses {
			if !inHalfOpen(expense.Date, start, end) {
				continue
			}
			total = total.Add(decimal.NewFromFloat(expense.Amount))
			categories.add(expense)
			count++
		}

		trends = append(trends, models.TrendMonth{
			Month:            monthStart.Month().String()[:3],
			Year:             monthStart.Year(),
			Total:            total.InexactFloat64(),
			Categories:       categories.toMap(),
			TransactionCount: count,
		})
	}

	return trends
}

func inHalfOpen(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
