package calculations

import (
	"context"
	"fmt"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"golang.org/x/sync/errgroup"
)

type DashboardAggregator struct {
	FindExpenses     usecase.FindExpensesRepository
	FindBudgets      usecase.FindBudgetsRepository
	FindSavingsGoals usecase.FindSavingsGoalsRepository
	TrendMonths      int
}

func NewDashboardAggregator(
	findExpenses usecase.FindExpensesRepository,
	findBudgets usecase.FindBudgetsRepository,
	findSavingsGoals usecase.FindSavingsGoalsRepository,
	trendMonths int,
) *DashboardAggregator {
	if trendMonths < 1 {
		trendMonths = DefaultTrendMonths
	}

	return &DashboardAggregator{
		FindExpenses:     findExpenses,
		FindBudgets:      findBudgets,
		FindSavingsGoals: findSavingsGoals,
		TrendMonths:      trendMonths,
	}
}

// Summary reads the three collections concurrently and joins them in memory.
func (a *DashboardAggregator) Summary(ctx context.Context, ownerId string, now time.Time) (*models.DashboardSummary, error) {
	var (
		expenses []models.Expense
		budgets  []models.Budget
		goals    []models.SavingsGoal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if expenses, err = a.FindExpenses.Find(gctx, ownerId); err != nil {
			return fmt.Errorf("finding expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if budgets, err = a.FindBudgets.Find(gctx, ownerId); err != nil {
			return fmt.Errorf("finding budgets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if goals, err = a.FindSavingsGoals.Find(gctx, ownerId); err != nil {
			return fmt.Errorf("finding savings goals: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Summarize(expenses, budgets, goals, now, a.TrendMonths), nil
}
