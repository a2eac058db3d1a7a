package usecase

import (
	"context"
	"time"
)

type SaveExportRepository interface {
	Save(ctx context.Context, key string, payload []byte, expiration time.Duration) error
}

// FindExportRepository returns nil, nil once the key has expired.
type FindExportRepository interface {
	Find(ctx context.Context, key string) ([]byte, error)
}
