package routes

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/setup/adapters"
	"github.com/anuntech/smartspend-backend/internal/setup/factory"
)

func ExpenseRoutes(server *http.ServeMux, opts Options) {
	server.Handle("POST /expenses", adapters.AdaptRoute(factory.MakeCreateExpenseController(opts.Db, opts.Location)))

	server.Handle("GET /expenses", adapters.AdaptRoute(factory.MakeGetExpensesController(opts.Db)))

	server.Handle("GET /expenses/{expenseId}", adapters.AdaptRoute(factory.MakeGetExpenseByIdController(opts.Db)))

	server.Handle("PUT /expenses/{expenseId}", adapters.AdaptRoute(factory.MakeUpdateExpenseController(opts.Db, opts.Location)))

	server.Handle("DELETE /expenses/{expenseId}", adapters.AdaptRoute(factory.MakeDeleteExpenseController(opts.Db)))

	if opts.Redis == nil {
		return
	}

	server.Handle("POST /expenses/export", adapters.AdaptRoute(factory.MakeExportExpensesController(opts.Db, opts.Redis, opts.ExportTTL)))

	server.Handle("GET /expenses/export/{key}", adapters.AdaptRoute(factory.MakeDownloadExportController(opts.Redis)))
}
