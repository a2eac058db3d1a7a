package savings

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

type DeleteSavingsGoalController struct {
	DeleteSavingsGoalRepository usecase.DeleteSavingsGoalRepository
}

func NewDeleteSavingsGoalController(deleteSavingsGoalRepository usecase.DeleteSavingsGoalRepository) *DeleteSavingsGoalController {
	return &DeleteSavingsGoalController{
		DeleteSavingsGoalRepository: deleteSavingsGoalRepository,
	}
}

func (c *DeleteSavingsGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	goalId, errResponse := helpers.GetPathObjectId(r, "goalId")
	if errResponse != nil {
		return errResponse
	}

	goal, err := c.DeleteSavingsGoalRepository.Delete(r.Req.Context(), goalId, ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentSavings, log.OpDelete, "an error occurred when deleting savings goal", err)
	}
	if goal == nil {
		return helpers.CreateErrorResponse("savings goal not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(goal, http.StatusOK)
}
