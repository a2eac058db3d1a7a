package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Timeout bounds every single store operation.
var Timeout = 10 * time.Second

func MongoHelper(ctx context.Context, URI string, databaseName string) (*mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(URI)
	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err = client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	slog.Info("MongoDB connection established", "database", databaseName)

	return client.Database(databaseName), nil
}

func DisconnectMongo(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		slog.Error("Error disconnecting from MongoDB", "error", err)
	}
}
