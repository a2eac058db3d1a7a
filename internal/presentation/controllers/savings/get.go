package savings

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

type GetSavingsGoalsController struct {
	FindSavingsGoalsRepository usecase.FindSavingsGoalsRepository
}

func NewGetSavingsGoalsController(findSavingsGoalsRepository usecase.FindSavingsGoalsRepository) *GetSavingsGoalsController {
	return &GetSavingsGoalsController{
		FindSavingsGoalsRepository: findSavingsGoalsRepository,
	}
}

func (c *GetSavingsGoalsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	goals, err := c.FindSavingsGoalsRepository.Find(r.Req.Context(), ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentSavings, log.OpList, "an error occurred when retrieving savings goals", err)
	}

	return helpers.CreateResponse(goals, http.StatusOK)
}
