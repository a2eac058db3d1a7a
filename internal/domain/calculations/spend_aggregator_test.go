package calculations

import (
	"context"
	"testing"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAggregator(s *memoryStore, now time.Time) *SpendAggregator {
	return NewSpendAggregator(memoryBudgets{s}, memoryExpenses{s}, memorySpent{s}, func() time.Time { return now }, 2)
}

func TestRecomputeSumsExpensesInsidePeriodWindow(t *testing.T) {
	now := time.Date(2024, time.August, 10, 12, 0, 0, 0, time.UTC)
	s := newMemoryStore()
	s.budgets = []models.Budget{
		budget("alice", "Food", 300, models.PeriodMonthly),
		budget("alice", "Travel", 1000, models.PeriodQuarterly),
		budget("alice", "Fun", 50, models.PeriodWeekly),
	}
	s.expenses = []models.Expense{
		expense("alice", "Food", 20.10, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)),
		expense("alice", "food ", 10.20, time.Date(2024, time.August, 9, 18, 0, 0, 0, time.UTC)),
		expense("alice", "Food", 99, time.Date(2024, time.July, 31, 23, 59, 0, 0, time.UTC)),
		expense("alice", "Food", 5, time.Date(2024, time.August, 10, 13, 0, 0, 0, time.UTC)), // after now
		expense("alice", "Travel", 400, time.Date(2024, time.July, 2, 0, 0, 0, 0, time.UTC)),
		expense("alice", "Travel", 100, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)),
		expense("alice", "Fun", 7, time.Date(2024, time.August, 4, 0, 0, 0, 0, time.UTC)),
		expense("alice", "Fun", 8, time.Date(2024, time.August, 3, 23, 0, 0, 0, time.UTC)),
		expense("bob", "Food", 1000, time.Date(2024, time.August, 2, 0, 0, 0, 0, time.UTC)),
	}

	budgets, err := newTestAggregator(s, now).Recompute(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, budgets, 3)

	assert.Equal(t, "Food", budgets[0].Category)
	assert.Equal(t, 30.3, budgets[0].Spent)
	assert.Equal(t, "Travel", budgets[1].Category)
	assert.Equal(t, 400.0, budgets[1].Spent)
	assert.Equal(t, "Fun", budgets[2].Category)
	assert.Equal(t, 7.0, budgets[2].Spent)

	for _, b := range budgets {
		require.NotNil(t, b.LastCalculatedAt)
		assert.Equal(t, now, *b.LastCalculatedAt)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	s := newMemoryStore()
	s.budgets = []models.Budget{budget("alice", "Food", 100, models.PeriodMonthly)}
	s.expenses = []models.Expense{expense("alice", "Food", 42, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC))}
	aggregator := newTestAggregator(s, now)

	first, err := aggregator.Recompute(context.Background(), "alice")
	require.NoError(t, err)
	second, err := aggregator.Recompute(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, first[0].Spent, second[0].Spent)
	assert.Equal(t, 42.0, second[0].Spent)
}

func TestRecomputeResetsSpentWhenNothingMatches(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	s := newMemoryStore()
	b := budget("alice", "Food", 100, models.PeriodMonthly)
	b.Spent = 80
	s.budgets = []models.Budget{b}

	budgets, err := newTestAggregator(s, now).Recompute(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 0.0, budgets[0].Spent)
}

func TestRecomputeLeavesFinishedBudgetsUpdatedOnFailure(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	s := newMemoryStore()
	ok := budget("alice", "Food", 100, models.PeriodMonthly)
	broken := budget("alice", "Rent", 900, models.PeriodMonthly)
	s.budgets = []models.Budget{ok, broken}
	s.expenses = []models.Expense{expense("alice", "Food", 12, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC))}
	s.failOn[broken.Id] = true

	aggregator := NewSpendAggregator(memoryBudgets{s}, memoryExpenses{s}, memorySpent{s}, func() time.Time { return now }, 1)
	_, err := aggregator.Recompute(context.Background(), "alice")
	require.ErrorIs(t, err, errStore)

	assert.Equal(t, 12.0, s.budgets[0].Spent)
	assert.Equal(t, 0.0, s.budgets[1].Spent)
}

func TestRecomputeWithoutBudgets(t *testing.T) {
	s := newMemoryStore()

	budgets, err := newTestAggregator(s, time.Now()).Recompute(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, budgets)
}

func TestRecomputePropagatesFindError(t *testing.T) {
	s := newMemoryStore()
	s.findErr = errStore

	_, err := newTestAggregator(s, time.Now()).Recompute(context.Background(), "alice")
	assert.ErrorIs(t, err, errStore)
}

func TestDeletedExpenseKeepsCachedSpentUntilRecompute(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	s := newMemoryStore()
	s.budgets = []models.Budget{budget("alice", "Food", 100, models.PeriodMonthly)}
	s.expenses = []models.Expense{expense("alice", "Food", 30, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC))}
	aggregator := newTestAggregator(s, now)

	_, err := aggregator.Recompute(context.Background(), "alice")
	require.NoError(t, err)

	s.expenses = nil
	assert.Equal(t, 30.0, s.budgets[0].Spent)

	budgets, err := aggregator.Recompute(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 0.0, budgets[0].Spent)
}
