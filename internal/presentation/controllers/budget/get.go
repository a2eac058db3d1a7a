package budget

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

type GetBudgetsController struct {
	FindBudgetsRepository usecase.FindBudgetsRepository
}

func NewGetBudgetsController(findBudgetsRepository usecase.FindBudgetsRepository) *GetBudgetsController {
	return &GetBudgetsController{
		FindBudgetsRepository: findBudgetsRepository,
	}
}

// Handle lists the budgets with whatever spent value is currently cached.
func (c *GetBudgetsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	budgets, err := c.FindBudgetsRepository.Find(r.Req.Context(), ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentBudget, log.OpList, "an error occurred when retrieving budgets", err)
	}

	return helpers.CreateResponse(budgets, http.StatusOK)
}
