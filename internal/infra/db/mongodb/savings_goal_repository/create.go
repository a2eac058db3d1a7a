package savings_goal_repository

import (
	"context"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateSavingsGoalRepository struct {
	Db *mongo.Database
}

func NewCreateSavingsGoalRepository(db *mongo.Database) *CreateSavingsGoalRepository {
	return &CreateSavingsGoalRepository{
		Db: db,
	}
}

func (r *CreateSavingsGoalRepository) Create(ctx context.Context, goal *models.SavingsGoal) (*models.SavingsGoal, error) {
	collection := r.Db.Collection(helpers.SavingsGoalCollection)

	now := time.Now().UTC()
	goalToSave := &models.SavingsGoal{
		Id:            primitive.NewObjectID(),
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Deadline:      goal.Deadline,
		OwnerId:       goal.OwnerId,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, goalToSave)
	if err != nil {
		return nil, err
	}

	return goalToSave, nil
}
