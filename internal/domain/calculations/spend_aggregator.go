package calculations

import (
	"context"
	"fmt"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"golang.org/x/sync/errgroup"
)

const DefaultRecalcConcurrency = 4

// SpendAggregator recomputes the cached spent value of every budget of an
// owner. Budgets are updated independently: when one fails the others that
// already finished keep their new value, and running it again is safe.
type SpendAggregator struct {
	FindBudgets          usecase.FindBudgetsRepository
	FindExpensesInWindow usecase.FindExpensesInWindowRepository
	UpdateBudgetSpent    usecase.UpdateBudgetSpentRepository
	Now                  func() time.Time
	Concurrency          int
}

func NewSpendAggregator(
	findBudgets usecase.FindBudgetsRepository,
	findExpensesInWindow usecase.FindExpensesInWindowRepository,
	updateBudgetSpent usecase.UpdateBudgetSpentRepository,
	now func() time.Time,
	concurrency int,
) *SpendAggregator {
	if concurrency < 1 {
		concurrency = DefaultRecalcConcurrency
	}
	if now == nil {
		now = time.Now
	}

	return &SpendAggregator{
		FindBudgets:          findBudgets,
		FindExpensesInWindow: findExpensesInWindow,
		UpdateBudgetSpent:    updateBudgetSpent,
		Now:                  now,
		Concurrency:          concurrency,
	}
}

// Recompute returns the updated budgets in the order they were listed.
func (a *SpendAggregator) Recompute(ctx context.Context, ownerId string) ([]models.Budget, error) {
	budgets, err := a.FindBudgets.Find(ctx, ownerId)
	if err != nil {
		return nil, fmt.Errorf("finding budgets: %w", err)
	}

	now := a.Now()
	results := make([]models.Budget, len(budgets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Concurrency)
	for i := range budgets {
		budget := budgets[i]
		g.Go(func() error {
			updated, err := a.recomputeOne(gctx, &budget, now)
			if err != nil {
				return err
			}
			results[i] = *updated
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (a *SpendAggregator) recomputeOne(ctx context.Context, budget *models.Budget, now time.Time) (*models.Budget, error) {
	start, end := budget.Period.Window(now)

	categoryKey := budget.CategoryKey
	if categoryKey == "" {
		categoryKey = models.CategoryKey(budget.Category)
	}

	expenses, err := a.FindExpensesInWindow.FindInWindow(ctx, budget.OwnerId, categoryKey, start, end)
	if err != nil {
		return nil, fmt.Errorf("finding expenses for budget %s: %w", budget.Id.Hex(), err)
	}

	spent := SumExpenses(expenses)
	updated, err := a.UpdateBudgetSpent.UpdateSpent(ctx, budget.Id, budget.OwnerId, spent, now)
	if err != nil {
		return nil, fmt.Errorf("updating budget %s: %w", budget.Id.Hex(), err)
	}
	if updated == nil {
		// deleted while we were summing
		budget.Spent = spent
		budget.LastCalculatedAt = &now
		return budget, nil
	}

	return updated, nil
}
