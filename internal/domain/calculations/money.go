package calculations

import (
	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/shopspring/decimal"
)

// SumExpenses adds the amounts of expenses without float drift.
func SumExpenses(expenses []models.Expense) float64 {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(decimal.NewFromFloat(expense.Amount))
	}
	return total.InexactFloat64()
}

// percentage returns part/whole*100, or 0 when whole is zero.
func percentage(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

type categoryTotals struct {
	order  []string
	labels map[string]string
	sums   map[string]decimal.Decimal
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{
		labels: map[string]string{},
		sums:   map[string]decimal.Decimal{},
	}
}

// add groups by normalized key. The first spelling seen labels the group.
func (c *categoryTotals) add(expense models.Expense) {
	key := expense.CategoryKey
	if key == "" {
		key = models.CategoryKey(expense.Category)
	}
	if _, ok := c.labels[key]; !ok {
		c.labels[key] = expense.Category
		c.order = append(c.order, key)
	}
	c.sums[key] = c.sums[key].Add(decimal.NewFromFloat(expense.Amount))
}

func (c *categoryTotals) toMap() map[string]float64 {
	result := make(map[string]float64, len(c.order))
	for _, key := range c.order {
		result[c.labels[key]] = c.sums[key].InexactFloat64()
	}
	return result
}
