package config

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/setup/middlewares"
	"github.com/anuntech/smartspend-backend/internal/setup/routes"
	"github.com/anuntech/smartspend-backend/internal/utils"
)

// SetupRoutes mounts the API under /api. tokens may be nil, in which case
// the caller is identified by the ownerId parameter or header only.
func SetupRoutes(server *http.ServeMux, opts routes.Options, tokens *utils.AccessTokenUtil) {
	apiServer := http.NewServeMux()
	routes.HealthRoutes(apiServer)
	routes.ExpenseRoutes(apiServer, opts)
	routes.BudgetRoutes(apiServer, opts)
	routes.SavingsRoutes(apiServer, opts)
	routes.DashboardRoutes(apiServer, opts)

	handler := middlewares.NoStoreHeader(middlewares.Identity(tokens)(apiServer))
	server.Handle("/api/", http.StripPrefix("/api", handler))
}
