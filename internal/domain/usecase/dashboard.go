package usecase

import (
	"context"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
)

type DashboardSummaryUseCase interface {
	Summary(ctx context.Context, ownerId string, now time.Time) (*models.DashboardSummary, error)
}
