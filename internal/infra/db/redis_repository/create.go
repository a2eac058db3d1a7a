package redis_repository

import (
	"context"
	"fmt"
	"time"

	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

type SaveExportRepository struct {
	Client *redis.Client
}

func NewSaveExportRepository(client *redis.Client) *SaveExportRepository {
	return &SaveExportRepository{
		Client: client,
	}
}

func (r *SaveExportRepository) Save(ctx context.Context, key string, payload []byte, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	if err := r.Client.Set(ctx, key, payload, expiration).Err(); err != nil {
		return fmt.Errorf("saving export %s to redis: %w", key, err)
	}

	return nil
}
