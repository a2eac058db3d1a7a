package routes

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/setup/adapters"
	"github.com/anuntech/smartspend-backend/internal/setup/factory"
)

func SavingsRoutes(server *http.ServeMux, opts Options) {
	server.Handle("POST /savings", adapters.AdaptRoute(factory.MakeCreateSavingsGoalController(opts.Db, opts.Location)))

	server.Handle("GET /savings", adapters.AdaptRoute(factory.MakeGetSavingsGoalsController(opts.Db)))

	server.Handle("GET /savings/{goalId}", adapters.AdaptRoute(factory.MakeGetSavingsGoalByIdController(opts.Db)))

	server.Handle("PUT /savings/{goalId}", adapters.AdaptRoute(factory.MakeUpdateSavingsGoalController(opts.Db, opts.Location)))

	server.Handle("DELETE /savings/{goalId}", adapters.AdaptRoute(factory.MakeDeleteSavingsGoalController(opts.Db)))

	server.Handle("POST /savings/{goalId}/contribute", adapters.AdaptRoute(factory.MakeContributeSavingsGoalController(opts.Db)))
}
