package savings_goal_repository

import (
	"context"
	"errors"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindSavingsGoalByIdRepository struct {
	Db *mongo.Database
}

func NewFindSavingsGoalByIdRepository(db *mongo.Database) *FindSavingsGoalByIdRepository {
	return &FindSavingsGoalByIdRepository{
		Db: db,
	}
}

func (r *FindSavingsGoalByIdRepository) Find(ctx context.Context, goalId primitive.ObjectID, ownerId string) (*models.SavingsGoal, error) {
	collection := r.Db.Collection(helpers.SavingsGoalCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	var goal models.SavingsGoal
	err := collection.FindOne(ctx, helpers.RecordFilter(goalId, ownerId)).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &goal, nil
}
