package budget

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

type DeleteBudgetController struct {
	DeleteBudgetRepository usecase.DeleteBudgetRepository
}

func NewDeleteBudgetController(deleteBudgetRepository usecase.DeleteBudgetRepository) *DeleteBudgetController {
	return &DeleteBudgetController{
		DeleteBudgetRepository: deleteBudgetRepository,
	}
}

func (c *DeleteBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	budgetId, errResponse := helpers.GetPathObjectId(r, "budgetId")
	if errResponse != nil {
		return errResponse
	}

	budget, err := c.DeleteBudgetRepository.Delete(r.Req.Context(), budgetId, ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentBudget, log.OpDelete, "an error occurred when deleting budget", err)
	}
	if budget == nil {
		return helpers.CreateErrorResponse("budget not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(budget, http.StatusOK)
}
