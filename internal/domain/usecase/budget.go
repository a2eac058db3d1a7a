package usecase

import (
	"context"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateBudgetRepository interface {
	Create(ctx context.Context, budget *models.Budget) (*models.Budget, error)
}

type FindBudgetsRepository interface {
	Find(ctx context.Context, ownerId string) ([]models.Budget, error)
}

type FindBudgetByIdRepository interface {
	Find(ctx context.Context, budgetId primitive.ObjectID, ownerId string) (*models.Budget, error)
}

type UpdateBudgetRepository interface {
	Update(ctx context.Context, budgetId primitive.ObjectID, ownerId string, update *models.BudgetUpdate) (*models.Budget, error)
}

// UpdateBudgetSpentRepository overwrites the cached spent value of one budget.
type UpdateBudgetSpentRepository interface {
	UpdateSpent(ctx context.Context, budgetId primitive.ObjectID, ownerId string, spent float64, calculatedAt time.Time) (*models.Budget, error)
}

type DeleteBudgetRepository interface {
	Delete(ctx context.Context, budgetId primitive.ObjectID, ownerId string) (*models.Budget, error)
}

// RecomputeBudgetsSpentUseCase refreshes the cached spent of every budget of
// an owner and returns them in listing order.
type RecomputeBudgetsSpentUseCase interface {
	Recompute(ctx context.Context, ownerId string) ([]models.Budget, error)
}
