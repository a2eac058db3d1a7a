package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavingsGoal struct {
	Id            primitive.ObjectID `json:"id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	TargetAmount  float64            `json:"targetAmount" bson:"target_amount"`
	CurrentAmount float64            `json:"currentAmount" bson:"current_amount"`
	Deadline      time.Time          `json:"deadline" bson:"deadline"`
	OwnerId       string             `json:"ownerId" bson:"owner_id"`
	CreatedAt     time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updated_at"`
}

type SavingsGoalUpdate struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *time.Time
}
