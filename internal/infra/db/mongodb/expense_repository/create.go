package expense_repository

import (
	"context"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateExpenseRepository struct {
	Db *mongo.Database
}

func NewCreateExpenseRepository(db *mongo.Database) *CreateExpenseRepository {
	return &CreateExpenseRepository{
		Db: db,
	}
}

func (r *CreateExpenseRepository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	collection := r.Db.Collection(helpers.ExpenseCollection)

	now := time.Now().UTC()
	expenseToSave := &models.Expense{
		Id:          primitive.NewObjectID(),
		Category:    expense.Category,
		CategoryKey: models.CategoryKey(expense.Category),
		Amount:      expense.Amount,
		Date:        expense.Date,
		Description: expense.Description,
		OwnerId:     expense.OwnerId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, expenseToSave)
	if err != nil {
		return nil, err
	}

	return expenseToSave, nil
}
