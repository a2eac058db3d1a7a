package expense

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

// DeleteExpenseController removes one expense. Budgets that counted it keep
// their cached spent until the next recomputation.
type DeleteExpenseController struct {
	DeleteExpenseRepository usecase.DeleteExpenseRepository
}

func NewDeleteExpenseController(deleteExpenseRepository usecase.DeleteExpenseRepository) *DeleteExpenseController {
	return &DeleteExpenseController{
		DeleteExpenseRepository: deleteExpenseRepository,
	}
}

func (c *DeleteExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	expenseId, errResponse := helpers.GetPathObjectId(r, "expenseId")
	if errResponse != nil {
		return errResponse
	}

	expense, err := c.DeleteExpenseRepository.Delete(r.Req.Context(), expenseId, ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentExpense, log.OpDelete, "an error occurred when deleting expense", err)
	}
	if expense == nil {
		return helpers.CreateErrorResponse("expense not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(expense, http.StatusOK)
}
