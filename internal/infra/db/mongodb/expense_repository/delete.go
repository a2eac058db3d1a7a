package expense_repository

import (
	"context"
	"errors"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteExpenseRepository struct {
	Db *mongo.Database
}

func NewDeleteExpenseRepository(db *mongo.Database) *DeleteExpenseRepository {
	return &DeleteExpenseRepository{
		Db: db,
	}
}

// Delete removes the expense and returns it. Budgets keep their cached spent
// until the next recomputation.
func (r *DeleteExpenseRepository) Delete(ctx context.Context, expenseId primitive.ObjectID, ownerId string) (*models.Expense, error) {
	collection := r.Db.Collection(helpers.ExpenseCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	var expense models.Expense
	err := collection.FindOneAndDelete(ctx, helpers.RecordFilter(expenseId, ownerId)).Decode(&expense)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &expense, nil
}
