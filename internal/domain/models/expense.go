package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Expense struct {
	Id          primitive.ObjectID `json:"id" bson:"_id"`
	Category    string             `json:"category" bson:"category"`
	CategoryKey string             `json:"-" bson:"category_key"`
	Amount      float64            `json:"amount" bson:"amount"`
	Date        time.Time          `json:"date" bson:"date"`
	Description string             `json:"description" bson:"description"`
	OwnerId     string             `json:"ownerId" bson:"owner_id"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}

// ExpenseUpdate carries a partial overwrite. Nil fields are left untouched.
type ExpenseUpdate struct {
	Category    *string
	Amount      *float64
	Date        *time.Time
	Description *string
}
