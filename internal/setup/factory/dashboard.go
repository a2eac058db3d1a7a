package factory

import (
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/calculations"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/budget_repository"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/expense_repository"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/savings_goal_repository"
	controllers "github.com/anuntech/smartspend-backend/internal/presentation/controllers/dashboard"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetSummaryController(db *mongo.Database, location *time.Location, trendMonths int) *controllers.GetSummaryController {
	findExpenses := expense_repository.NewFindExpensesRepository(db)
	findBudgets := budget_repository.NewFindBudgetsRepository(db)
	findSavingsGoals := savings_goal_repository.NewFindSavingsGoalsRepository(db)
	aggregator := calculations.NewDashboardAggregator(findExpenses, findBudgets, findSavingsGoals, trendMonths)
	return controllers.NewGetSummaryController(aggregator, location)
}

func MakeGetTrendsController(db *mongo.Database, location *time.Location) *controllers.GetTrendsController {
	findExpenses := expense_repository.NewFindExpensesRepository(db)
	return controllers.NewGetTrendsController(findExpenses, location)
}
