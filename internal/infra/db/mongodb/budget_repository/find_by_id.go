package budget_repository

import (
	"context"
	"errors"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindBudgetByIdRepository struct {
	Db *mongo.Database
}

func NewFindBudgetByIdRepository(db *mongo.Database) *FindBudgetByIdRepository {
	return &FindBudgetByIdRepository{
		Db: db,
	}
}

func (r *FindBudgetByIdRepository) Find(ctx context.Context, budgetId primitive.ObjectID, ownerId string) (*models.Budget, error) {
	collection := r.Db.Collection(helpers.BudgetCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	var budget models.Budget
	err := collection.FindOne(ctx, helpers.RecordFilter(budgetId, ownerId)).Decode(&budget)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &budget, nil
}
