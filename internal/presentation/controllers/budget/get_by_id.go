package budget

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

type GetBudgetByIdController struct {
	FindBudgetByIdRepository usecase.FindBudgetByIdRepository
}

func NewGetBudgetByIdController(findBudgetByIdRepository usecase.FindBudgetByIdRepository) *GetBudgetByIdController {
	return &GetBudgetByIdController{
		FindBudgetByIdRepository: findBudgetByIdRepository,
	}
}

func (c *GetBudgetByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	budgetId, errResponse := helpers.GetPathObjectId(r, "budgetId")
	if errResponse != nil {
		return errResponse
	}

	budget, err := c.FindBudgetByIdRepository.Find(r.Req.Context(), budgetId, ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentBudget, log.OpRead, "an error occurred when finding budget", err)
	}
	if budget == nil {
		return helpers.CreateErrorResponse("budget not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(budget, http.StatusOK)
}
