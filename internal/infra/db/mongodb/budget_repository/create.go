package budget_repository

import (
	"context"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateBudgetRepository struct {
	Db *mongo.Database
}

func NewCreateBudgetRepository(db *mongo.Database) *CreateBudgetRepository {
	return &CreateBudgetRepository{
		Db: db,
	}
}

func (r *CreateBudgetRepository) Create(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	collection := r.Db.Collection(helpers.BudgetCollection)

	now := time.Now().UTC()
	budgetToSave := &models.Budget{
		Id:          primitive.NewObjectID(),
		Category:    budget.Category,
		CategoryKey: models.CategoryKey(budget.Category),
		Amount:      budget.Amount,
		Spent:       budget.Spent,
		Period:      budget.Period,
		OwnerId:     budget.OwnerId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, budgetToSave)
	if err != nil {
		return nil, err
	}

	return budgetToSave, nil
}
