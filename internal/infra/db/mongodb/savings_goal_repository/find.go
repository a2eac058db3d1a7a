package savings_goal_repository

import (
	"context"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindSavingsGoalsRepository struct {
	Db *mongo.Database
}

func NewFindSavingsGoalsRepository(db *mongo.Database) *FindSavingsGoalsRepository {
	return &FindSavingsGoalsRepository{
		Db: db,
	}
}

func (r *FindSavingsGoalsRepository) Find(ctx context.Context, ownerId string) ([]models.SavingsGoal, error) {
	collection := r.Db.Collection(helpers.SavingsGoalCollection)

	opts := options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}, {Key: "_id", Value: 1}})

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, helpers.OwnerFilter(ownerId), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	goals := []models.SavingsGoal{}
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, err
	}

	return goals, nil
}
