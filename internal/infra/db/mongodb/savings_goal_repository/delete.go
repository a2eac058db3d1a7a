package savings_goal_repository

import (
	"context"
	"errors"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteSavingsGoalRepository struct {
	Db *mongo.Database
}

func NewDeleteSavingsGoalRepository(db *mongo.Database) *DeleteSavingsGoalRepository {
	return &DeleteSavingsGoalRepository{
		Db: db,
	}
}

func (r *DeleteSavingsGoalRepository) Delete(ctx context.Context, goalId primitive.ObjectID, ownerId string) (*models.SavingsGoal, error) {
	collection := r.Db.Collection(helpers.SavingsGoalCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	var goal models.SavingsGoal
	err := collection.FindOneAndDelete(ctx, helpers.RecordFilter(goalId, ownerId)).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &goal, nil
}
