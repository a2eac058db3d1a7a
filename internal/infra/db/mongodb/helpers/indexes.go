package helpers

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ExpenseCollection     = "expense"
	BudgetCollection      = "budget"
	SavingsGoalCollection = "savings_goal"
)

// EnsureIndexes creates the owner scoped indexes the repositories query on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		ExpenseCollection: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "category_key", Value: 1}, {Key: "date", Value: 1}}},
		},
		BudgetCollection: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
		SavingsGoalCollection: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("creating indexes on %s: %w", collection, err)
		}
	}

	return nil
}
