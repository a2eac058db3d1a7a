package routes

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/setup/adapters"
	"github.com/anuntech/smartspend-backend/internal/setup/factory"
)

func DashboardRoutes(server *http.ServeMux, opts Options) {
	server.Handle("GET /dashboard/summary", adapters.AdaptRoute(factory.MakeGetSummaryController(opts.Db, opts.Location, opts.TrendMonths)))

	server.Handle("GET /dashboard/trends", adapters.AdaptRoute(factory.MakeGetTrendsController(opts.Db, opts.Location)))
}
