package calculations

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryStore struct {
	mu        sync.Mutex
	expenses  []models.Expense
	budgets   []models.Budget
	goals     []models.SavingsGoal
	failOn    map[primitive.ObjectID]bool
	findErr   error
	windows   map[primitive.ObjectID][2]time.Time
	updatedAt map[primitive.ObjectID]time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		failOn:    map[primitive.ObjectID]bool{},
		windows:   map[primitive.ObjectID][2]time.Time{},
		updatedAt: map[primitive.ObjectID]time.Time{},
	}
}

type memoryBudgets struct{ s *memoryStore }

func (r memoryBudgets) Find(ctx context.Context, ownerId string) ([]models.Budget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.findErr != nil {
		return nil, r.s.findErr
	}
	var result []models.Budget
	for _, b := range r.s.budgets {
		if b.OwnerId == ownerId {
			result = append(result, b)
		}
	}
	return result, nil
}

type memoryExpenses struct{ s *memoryStore }

func (r memoryExpenses) Find(ctx context.Context, ownerId string) ([]models.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.Expense
	for _, e := range r.s.expenses {
		if e.OwnerId == ownerId {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r memoryExpenses) FindInWindow(ctx context.Context, ownerId string, categoryKey string, start time.Time, end time.Time) ([]models.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.Expense
	for _, e := range r.s.expenses {
		if e.OwnerId != ownerId || models.CategoryKey(e.Category) != categoryKey {
			continue
		}
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

type memoryGoals struct{ s *memoryStore }

func (r memoryGoals) Find(ctx context.Context, ownerId string) ([]models.SavingsGoal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var result []models.SavingsGoal
	for _, g := range r.s.goals {
		if g.OwnerId == ownerId {
			result = append(result, g)
		}
	}
	return result, nil
}

type memorySpent struct{ s *memoryStore }

var errStore = errors.New("store unavailable")

func (r memorySpent) UpdateSpent(ctx context.Context, budgetId primitive.ObjectID, ownerId string, spent float64, calculatedAt time.Time) (*models.Budget, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failOn[budgetId] {
		return nil, errStore
	}
	for i := range r.s.budgets {
		b := &r.s.budgets[i]
		if b.Id == budgetId && b.OwnerId == ownerId {
			b.Spent = spent
			at := calculatedAt
			b.LastCalculatedAt = &at
			r.s.updatedAt[budgetId] = calculatedAt
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func expense(owner, category string, amount float64, at time.Time) models.Expense {
	return models.Expense{
		Id:          primitive.NewObjectID(),
		Category:    category,
		CategoryKey: models.CategoryKey(category),
		Amount:      amount,
		Date:        at,
		Description: category + " expense",
		OwnerId:     owner,
	}
}

func budget(owner, category string, amount float64, period models.BudgetPeriod) models.Budget {
	return models.Budget{
		Id:          primitive.NewObjectID(),
		Category:    category,
		CategoryKey: models.CategoryKey(category),
		Amount:      amount,
		Period:      period,
		OwnerId:     owner,
	}
}
