package usecase

import (
	"context"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) (*models.Expense, error)
}

// FindExpensesRepository returns every expense of the owner, newest first.
type FindExpensesRepository interface {
	Find(ctx context.Context, ownerId string) ([]models.Expense, error)
}

// FindExpensesInWindowRepository returns the owner's expenses of one category
// dated within [start, end].
type FindExpensesInWindowRepository interface {
	FindInWindow(ctx context.Context, ownerId string, categoryKey string, start time.Time, end time.Time) ([]models.Expense, error)
}

type FindExpenseByIdRepository interface {
	Find(ctx context.Context, expenseId primitive.ObjectID, ownerId string) (*models.Expense, error)
}

type UpdateExpenseRepository interface {
	Update(ctx context.Context, expenseId primitive.ObjectID, ownerId string, update *models.ExpenseUpdate) (*models.Expense, error)
}

type DeleteExpenseRepository interface {
	Delete(ctx context.Context, expenseId primitive.ObjectID, ownerId string) (*models.Expense, error)
}
