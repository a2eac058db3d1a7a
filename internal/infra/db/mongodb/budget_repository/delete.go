package budget_repository

import (
	"context"
	"errors"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteBudgetRepository struct {
	Db *mongo.Database
}

func NewDeleteBudgetRepository(db *mongo.Database) *DeleteBudgetRepository {
	return &DeleteBudgetRepository{
		Db: db,
	}
}

func (r *DeleteBudgetRepository) Delete(ctx context.Context, budgetId primitive.ObjectID, ownerId string) (*models.Budget, error) {
	collection := r.Db.Collection(helpers.BudgetCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	var budget models.Budget
	err := collection.FindOneAndDelete(ctx, helpers.RecordFilter(budgetId, ownerId)).Decode(&budget)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &budget, nil
}
