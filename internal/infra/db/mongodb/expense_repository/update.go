package expense_repository

import (
	"context"
	"errors"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateExpenseRepository struct {
	Db *mongo.Database
}

func NewUpdateExpenseRepository(db *mongo.Database) *UpdateExpenseRepository {
	return &UpdateExpenseRepository{
		Db: db,
	}
}

func (r *UpdateExpenseRepository) Update(ctx context.Context, expenseId primitive.ObjectID, ownerId string, update *models.ExpenseUpdate) (*models.Expense, error) {
	collection := r.Db.Collection(helpers.ExpenseCollection)

	fields := bson.M{}
	if update.Category != nil {
		fields["category"] = *update.Category
		fields["category_key"] = models.CategoryKey(*update.Category)
	}
	if update.Amount != nil {
		fields["amount"] = *update.Amount
	}
	if update.Date != nil {
		fields["date"] = *update.Date
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var expense models.Expense
	err := collection.FindOneAndUpdate(ctx, helpers.RecordFilter(expenseId, ownerId), helpers.SetFields(fields), opts).Decode(&expense)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &expense, nil
}
