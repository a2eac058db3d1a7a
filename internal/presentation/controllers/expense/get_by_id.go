package expense

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

type GetExpenseByIdController struct {
	FindExpenseByIdRepository usecase.FindExpenseByIdRepository
}

func NewGetExpenseByIdController(findExpenseByIdRepository usecase.FindExpenseByIdRepository) *GetExpenseByIdController {
	return &GetExpenseByIdController{
		FindExpenseByIdRepository: findExpenseByIdRepository,
	}
}

func (c *GetExpenseByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	expenseId, errResponse := helpers.GetPathObjectId(r, "expenseId")
	if errResponse != nil {
		return errResponse
	}

	expense, err := c.FindExpenseByIdRepository.Find(r.Req.Context(), expenseId, ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentExpense, log.OpRead, "an error occurred when finding expense", err)
	}
	if expense == nil {
		return helpers.CreateErrorResponse("expense not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(expense, http.StatusOK)
}
