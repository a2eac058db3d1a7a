package setup

import (
	"fmt"
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/setup/config"
	"github.com/anuntech/smartspend-backend/internal/setup/middlewares"
	"github.com/anuntech/smartspend-backend/internal/setup/routes"
	"github.com/anuntech/smartspend-backend/internal/utils"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Server builds the full handler chain: request logging, panic recovery,
// CORS and then the API routes.
func Server(cfg *config.Config, db *mongo.Database, redisClient *redis.Client, logger *log.Logger) (http.Handler, error) {
	var tokens *utils.AccessTokenUtil
	if cfg.SecretJWT != "" {
		var err error
		if tokens, err = utils.NewAccessTokenUtil(cfg.SecretJWT); err != nil {
			return nil, fmt.Errorf("preparing session token decoder: %w", err)
		}
	}

	mux := http.NewServeMux()
	config.SetupRoutes(mux, routes.Options{
		Db:                db,
		Redis:             redisClient,
		Location:          cfg.Location(),
		TrendMonths:       cfg.TrendMonths,
		RecalcConcurrency: cfg.RecalcConcurrency,
		ExportTTL:         cfg.ExportTTL,
	}, tokens)

	var handler http.Handler = mux
	handler = middlewares.CorsMiddleware(cfg.AllowedOrigins)(handler)
	handler = middlewares.RecoveryMiddleware(handler)
	handler = log.Middleware(logger)(handler)

	return handler, nil
}
