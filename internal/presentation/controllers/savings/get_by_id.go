package savings

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

type GetSavingsGoalByIdController struct {
	FindSavingsGoalByIdRepository usecase.FindSavingsGoalByIdRepository
}

func NewGetSavingsGoalByIdController(findSavingsGoalByIdRepository usecase.FindSavingsGoalByIdRepository) *GetSavingsGoalByIdController {
	return &GetSavingsGoalByIdController{
		FindSavingsGoalByIdRepository: findSavingsGoalByIdRepository,
	}
}

func (c *GetSavingsGoalByIdController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	goalId, errResponse := helpers.GetPathObjectId(r, "goalId")
	if errResponse != nil {
		return errResponse
	}

	goal, err := c.FindSavingsGoalByIdRepository.Find(r.Req.Context(), goalId, ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentSavings, log.OpRead, "an error occurred when finding savings goal", err)
	}
	if goal == nil {
		return helpers.CreateErrorResponse("savings goal not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(goal, http.StatusOK)
}
