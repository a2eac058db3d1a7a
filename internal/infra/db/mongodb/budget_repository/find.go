package budget_repository

import (
	"context"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindBudgetsRepository struct {
	Db *mongo.Database
}

func NewFindBudgetsRepository(db *mongo.Database) *FindBudgetsRepository {
	return &FindBudgetsRepository{
		Db: db,
	}
}

func (r *FindBudgetsRepository) Find(ctx context.Context, ownerId string) ([]models.Budget, error) {
	collection := r.Db.Collection(helpers.BudgetCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, helpers.OwnerFilter(ownerId), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	budgets := []models.Budget{}
	if err := cursor.All(ctx, &budgets); err != nil {
		return nil, err
	}

	return budgets, nil
}
