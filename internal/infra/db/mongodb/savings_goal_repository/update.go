package savings_goal_repository

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

type UpdateSavingsGoalRepository struct {
	Db *mongo.Database
}

func NewUpdateSavingsGoalRepository(db *mongo.Database) *UpdateSavingsGoalRepository {
	return &UpdateSavingsGoalRepository{
		Db: db,
	}
}

func (r *UpdateSavingsGoalRepository) Update(ctx context.Context, goalId primitive.ObjectID, ownerId string, update *models.SavingsGoalUpdate) (*models.SavingsGoal, error) {
	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.TargetAmount != nil {
		fields["target_amount"] = *update.TargetAmount
	}
	if update.CurrentAmount != nil {
		fields["current_amount"] = *update.CurrentAmount
	}
	if update.Deadline != nil {
		fields["deadline"] = *update.Deadline
	}

	return r.findOneAndUpdate(ctx, goalId, ownerId, helpers.SetFields(fields))
}

// Contribute uses $inc so that concurrent contributions never overwrite
// each other. The target amount is not a ceiling.
func (r *UpdateSavingsGoalRepository) Contribute(ctx context.Context, goalId primitive.ObjectID, ownerId string, amount float64) (*models.SavingsGoal, error) {
	return r.findOneAndUpdate(ctx, goalId, ownerId, bson.M{
		"$inc": bson.M{"current_amount": amount},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *UpdateSavingsGoalRepository) findOneAndUpdate(ctx context.Context, goalId primitive.ObjectID, ownerId string, update bson.M) (*models.SavingsGoal, error) {
	collection := r.Db.Collection(helpers.SavingsGoalCollection)

	ctx, cancel := context.WithTimeout(ctx, helpers.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var goal models.SavingsGoal
	err := collection.FindOneAndUpdate(ctx, helpers.RecordFilter(goalId, ownerId), update, opts).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &goal, nil
}
