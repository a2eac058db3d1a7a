package expense_repository

import (
	"context"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FindExpensesRepository struct {
	Db *mongo.Database
}

func NewFindExpensesRepository(db *mongo.Database) *FindExpensesRepository {
	return &FindExpensesRepository{
		Db: db,
	}
}

func (r *FindExpensesRepository) Find(ctx context.Context, ownerId string) ([]models.Expense, error) {
	return r.find(ctx, helpers.OwnerFilter(ownerId))
}

func (r *FindExpensesRepository) FindInWindow(ctx context.Context, ownerId string, categoryKey string, start time.Time, end time.Time) ([]models.Expense, error) {
	return r.find(ctx, helpers.CategoryWindowFilter(ownerId, categoryKey, start, end))
}

func (r *FindExpensesRepository) find(ctx context.Context, filter bson.M) ([]models.Expense, error) {
	collection := r.Db.Collection(helpers.ExpenseCollection)

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	expenses := []models.Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}

	return expenses, nil
}
