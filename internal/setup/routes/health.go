package routes

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
	"github.com/anuntech/smartspend-backend/internal/setup/adapters"
)

type healthController struct{}

func (healthController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(map[string]string{"status": "ok"}, http.StatusOK)
}

func HealthRoutes(server *http.ServeMux) {
	server.Handle("GET /health", adapters.AdaptRoute(healthController{}))
}
