package redis_repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/anuntech/smartspend-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

type FindExportRepository struct {
	Client *redis.Client
}

func NewFindExportRepository(client *redis.Client) *FindExportRepository {
	return &FindExportRepository{
		Client: client,
	}
}

func (r *FindExportRepository) Find(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.RedisTimeout)
	defer cancel()

	value, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding export %s in redis: %w", key, err)
	}

	return value, nil
}
