package expense

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

type GetExpensesController struct {
	FindExpensesRepository usecase.FindExpensesRepository
}

func NewGetExpensesController(findExpensesRepository usecase.FindExpensesRepository) *GetExpensesController {
	return &GetExpensesController{
		FindExpensesRepository: findExpensesRepository,
	}
}

func (c *GetExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	expenses, err := c.FindExpensesRepository.Find(r.Req.Context(), ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentExpense, log.OpList, "an error occurred when retrieving expenses", err)
	}

	return helpers.CreateResponse(expenses, http.StatusOK)
}
