package budget_repository

import (
	"context"
	"errors"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateBudgetRepository struct {
	Db *mongo.Database
}

func NewUpdateBudgetRepository(db *mongo.Database) *UpdateBudgetRepository {
	return &UpdateBudgetRepository{
		Db: db,
	}
}

func (r *UpdateBudgetRepository) Update(ctx context.Context, budgetId primitive.ObjectID, ownerId string, update *models.BudgetUpdate) (*models.Budget, error) {
	fields := bson.M{}
	if update.Category != nil {
		fields["category"] = *update.Category
		fields["category_key"] = models.CategoryKey(*update.Category)
	}
	if update.Amount != nil {
		fields["amount"] = *update.Amount
	}
	if update.Period != nil {
		fields["period"] = *update.Period
	}

	return r.findOneAndSet(ctx, budgetId, ownerId, fields)
}

// UpdateSpent overwrites the cached spent value. Concurrent recomputations
// race with last write wins.
func (r *UpdateBudgetRepository) UpdateSpent(ctx context.Context, budgetId primitive.ObjectID, ownerId string, spent float64, calculatedAt time.Time) (*models.Budget, error) {
	return r.findOneAndSet(ctx, budgetId, ownerId, bson.M{
		"spent":              spent,
		"last_calculated_at": calculatedAt.UTC(),
	})
}

func (r *UpdateBudgetRepository) findOneAndSet(ctx context.Context, budgetId primitive.ObjectID, ownerId string, fields bson.M) (*models.Budget, error) {
	collection := r.Db.Collection(helpers.BudgetCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var budget models.Budget
	err := collection.FindOneAndUpdate(ctx, helpers.RecordFilter(budgetId, ownerId), helpers.SetFields(fields), opts).Decode(&budget)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &budget, nil
}
