package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DashboardTotals struct {
	MonthlyExpenses           float64 `json:"monthlyExpenses"`
	TotalBudget               float64 `json:"totalBudget"`
	TotalSpent                float64 `json:"totalSpent"`
	BudgetUsagePercentage     float64 `json:"budgetUsagePercentage"`
	TotalSavingsTarget        float64 `json:"totalSavingsTarget"`
	TotalSavingsCurrent       float64 `json:"totalSavingsCurrent"`
	SavingsProgressPercentage float64 `json:"savingsProgressPercentage"`
}

type DashboardCounts struct {
	ExpenseCount      int `json:"expenseCount"`
	BudgetCount       int `json:"budgetCount"`
	SavingsGoalCount  int `json:"savingsGoalCount"`
	TotalTransactions int `json:"totalTransactions"`
}

type TrendMonth struct {
	Month            string             `json:"month"` // short month name, "Jan"
	Year             int                `json:"year"`
	Total            float64            `json:"total"`
	Categories       map[string]float64 `json:"categories"`
	TransactionCount int                `json:"transactionCount"`
}

type DashboardBreakdown struct {
	ExpenseByCategory map[string]float64 `json:"expenseByCategory"`
	MonthlyTrends     []TrendMonth       `json:"monthlyTrends"`
}

type RecentTransaction struct {
	Id          primitive.ObjectID `json:"id"`
	Description string             `json:"description"`
	Amount      float64            `json:"amount"`
	Date        time.Time          `json:"date"`
	Category    string             `json:"category"`
}

type DashboardSummary struct {
	Totals             DashboardTotals     `json:"totals"`
	Counts             DashboardCounts     `json:"counts"`
	Breakdown          DashboardBreakdown  `json:"breakdown"`
	RecentTransactions []RecentTransaction `json:"recentTransactions"`
	GeneratedAt        time.Time           `json:"generatedAt"`
}
