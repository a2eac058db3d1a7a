package usecase

import (
	"context"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateSavingsGoalRepository interface {
	Create(ctx context.Context, goal *models.SavingsGoal) (*models.SavingsGoal, error)
}

type FindSavingsGoalsRepository interface {
	Find(ctx context.Context, ownerId string) ([]models.SavingsGoal, error)
}

type FindSavingsGoalByIdRepository interface {
	Find(ctx context.Context, goalId primitive.ObjectID, ownerId string) (*models.SavingsGoal, error)
}

type UpdateSavingsGoalRepository interface {
	Update(ctx context.Context, goalId primitive.ObjectID, ownerId string, update *models.SavingsGoalUpdate) (*models.SavingsGoal, error)
}

// ContributeSavingsGoalRepository atomically adds amount to the current amount.
type ContributeSavingsGoalRepository interface {
	Contribute(ctx context.Context, goalId primitive.ObjectID, ownerId string, amount float64) (*models.SavingsGoal, error)
}

type DeleteSavingsGoalRepository interface {
	Delete(ctx context.Context, goalId primitive.ObjectID, ownerId string) (*models.SavingsGoal, error)
}
