package savings

import (
	"encoding/json"
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/calculations"
	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

// ContributeSavingsGoalController adds to a goal's current amount. There is
// no cap at the target.
type ContributeSavingsGoalController struct {
	ContributeSavingsGoalRepository usecase.ContributeSavingsGoalRepository
}

func NewContributeSavingsGoalController(contributeSavingsGoalRepository usecase.ContributeSavingsGoalRepository) *ContributeSavingsGoalController {
	return &ContributeSavingsGoalController{
		ContributeSavingsGoalRepository: contributeSavingsGoalRepository,
	}
}

type ContributeSavingsGoalControllerBody struct {
	Amount json.RawMessage `json:"amount"`
}

func (c *ContributeSavingsGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	goalId, errResponse := helpers.GetPathObjectId(r, "goalId")
	if errResponse != nil {
		return errResponse
	}

	var body ContributeSavingsGoalControllerBody
	if r.Body == nil {
		return helpers.CreateErrorResponse("invalid body request", http.StatusBadRequest)
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateErrorResponse("invalid body request", http.StatusBadRequest)
	}

	amount, err := calculations.ParseContributionAmount(body.Amount)
	if err != nil {
		return helpers.CreateErrorResponse(err.Error(), http.StatusBadRequest)
	}

	goal, err := c.ContributeSavingsGoalRepository.Contribute(r.Req.Context(), goalId, ownerId, amount)
	if err != nil {
		return helpers.InternalError(r, log.ComponentSavings, log.OpContribute, "an error occurred when contributing to savings goal", err)
	}
	if goal == nil {
		return helpers.CreateErrorResponse("savings goal not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(goal, http.StatusOK)
}
