package routes

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/setup/adapters"
	"github.com/anuntech/smartspend-backend/internal/setup/factory"
)

func BudgetRoutes(server *http.ServeMux, opts Options) {
	server.Handle("POST /budgets", adapters.AdaptRoute(factory.MakeCreateBudgetController(opts.Db)))

	server.Handle("GET /budgets", adapters.AdaptRoute(factory.MakeGetBudgetsController(opts.Db)))

	// registered literally so it takes precedence over /budgets/{budgetId}
	server.Handle("GET /budgets/calculate", adapters.AdaptRoute(factory.MakeCalculateBudgetsController(opts.Db, opts.Location, opts.RecalcConcurrency)))

	server.Handle("GET /budgets/{budgetId}", adapters.AdaptRoute(factory.MakeGetBudgetByIdController(opts.Db)))

	server.Handle("PUT /budgets/{budgetId}", adapters.AdaptRoute(factory.MakeUpdateBudgetController(opts.Db)))

	server.Handle("DELETE /budgets/{budgetId}", adapters.AdaptRoute(factory.MakeDeleteBudgetController(opts.Db)))
}
