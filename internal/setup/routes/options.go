package routes

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Options carries what the route groups need to build their controllers.
type Options struct {
	Db       *mongo.Database
	Redis    *redis.Client // nil disables the export routes
	Location *time.Location

	TrendMonths       int
	RecalcConcurrency int
	ExportTTL         time.Duration
}
