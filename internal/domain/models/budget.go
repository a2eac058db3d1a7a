package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Budget struct {
	Id          primitive.ObjectID `json:"id" bson:"_id"`
	Category    string             `json:"category" bson:"category"`
	CategoryKey string             `json:"-" bson:"category_key"`
	Amount      float64            `json:"amount" bson:"amount"`
	// Spent is a cached projection of the matching expenses. It is only as
	// fresh as LastCalculatedAt.
	Spent            float64      `json:"spent" bson:"spent"`
	Period           BudgetPeriod `json:"period" bson:"period"`
	LastCalculatedAt *time.Time   `json:"lastCalculatedAt" bson:"last_calculated_at"`
	OwnerId          string       `json:"ownerId" bson:"owner_id"`
	CreatedAt        time.Time    `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time    `json:"updatedAt" bson:"updated_at"`
}

type BudgetUpdate struct {
	Category *string
	Amount   *float64
	Period   *BudgetPeriod
}
