package calculations

import (
	"sort"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/shopspring/decimal"
)

const RecentTransactionsLimit = 10

// Summarize joins the owner's records into the dashboard summary. Budget
// spent values are taken as cached, nothing is recomputed here.
func Summarize(expenses []models.Expense, budgets []models.Budget, goals []models.SavingsGoal, now time.Time, trendMonths int) *models.DashboardSummary {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})

	monthStart, monthEnd := models.MonthWindow(now)
	monthly := decimal.Zero
	monthlyCount := 0
	byCategory := newCategoryTotals()
	for _, expense := range sorted {
		if !inHalfOpen(expense.Date, monthStart, monthEnd) {
			continue
		}
		monthly = monthly.Add(decimal.NewFromFloat(expense.Amount))
		byCategory.add(expense)
		monthlyCount++
	}

	totalBudget, totalSpent := decimal.Zero, decimal.Zero
	for _, budget := range budgets {
		totalBudget = totalBudget.Add(decimal.NewFromFloat(budget.Amount))
		totalSpent = totalSpent.Add(decimal.NewFromFloat(budget.Spent))
	}

	savingsTarget, savingsCurrent := decimal.Zero, decimal.Zero
	for _, goal := range goals {
		savingsTarget = savingsTarget.Add(decimal.NewFromFloat(goal.TargetAmount))
		savingsCurrent = savingsCurrent.Add(decimal.NewFromFloat(goal.CurrentAmount))
	}

	recent := make([]models.RecentTransaction, 0, RecentTransactionsLimit)
	for _, expense := range sorted {
		if len(recent) == RecentTransactionsLimit {
			break
		}
		recent = append(recent, models.RecentTransaction{
			Id:          expense.Id,
			Description: expense.Description,
			Amount:      expense.Amount,
			Date:        expense.Date,
			Category:    expense.Category,
		})
	}

	return &models.DashboardSummary{
		Totals: models.DashboardTotals{
			MonthlyExpenses:           monthly.InexactFloat64(),
			TotalBudget:               totalBudget.InexactFloat64(),
			TotalSpent:                totalSpent.InexactFloat64(),
			BudgetUsagePercentage:     percentage(totalSpent, totalBudget),
			TotalSavingsTarget:        savingsTarget.InexactFloat64(),
			TotalSavingsCurrent:       savingsCurrent.InexactFloat64(),
			SavingsProgressPercentage: percentage(savingsCurrent, savingsTarget),
		},
		Counts: models.DashboardCounts{
			ExpenseCount:      monthlyCount,
			BudgetCount:       len(budgets),
			SavingsGoalCount:  len(goals),
			TotalTransactions: len(expenses),
		},
		Breakdown: models.DashboardBreakdown{
			ExpenseByCategory: byCategory.toMap(),
			MonthlyTrends:     MonthlyTrends(sorted, now, trendMonths),
		},
		RecentTransactions: recent,
		GeneratedAt:        now,
	}
}
