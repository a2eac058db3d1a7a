package helpers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func OwnerFilter(ownerId string) bson.M {
	return bson.M{"owner_id": ownerId}
}

func RecordFilter(id primitive.ObjectID, ownerId string) bson.M {
	return bson.M{"_id": id, "owner_id": ownerId}
}

// CategoryWindowFilter matches the owner's expenses of a category dated
// within the inclusive range [start, end].
func CategoryWindowFilter(ownerId string, categoryKey string, start time.Time, end time.Time) bson.M {
	return bson.M{
		"owner_id":     ownerId,
		"category_key": categoryKey,
		"date": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
}

// SetFields builds a $set document, always stamping updated_at.
func SetFields(fields bson.M) bson.M {
	fields["updated_at"] = time.Now().UTC()
	return bson.M{"$set": fields}
}
