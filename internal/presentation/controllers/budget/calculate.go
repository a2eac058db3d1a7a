package budget

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

// CalculateBudgetsController recomputes spent for every budget of the caller.
// A failure leaves the budgets that already finished updated; retrying is safe.
type CalculateBudgetsController struct {
	RecomputeBudgetsSpent usecase.RecomputeBudgetsSpentUseCase
}

func NewCalculateBudgetsController(recomputeBudgetsSpent usecase.RecomputeBudgetsSpentUseCase) *CalculateBudgetsController {
	return &CalculateBudgetsController{
		RecomputeBudgetsSpent: recomputeBudgetsSpent,
	}
}

func (c *CalculateBudgetsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	budgets, err := c.RecomputeBudgetsSpent.Recompute(r.Req.Context(), ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentBudget, log.OpRecompute, "an error occurred when calculating budgets", err)
	}

	log.FromContext(r.Req.Context()).WithComponent(log.ComponentBudget).Debug("budgets recalculated",
		log.FieldOwnerID, ownerId,
		"count", len(budgets),
	)

	return helpers.CreateResponse(budgets, http.StatusOK)
}
