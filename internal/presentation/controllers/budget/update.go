package budget

import (
	"net/http"
	"strings"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type UpdateBudgetController struct {
	Validate               *validator.Validate
	UpdateBudgetRepository usecase.UpdateBudgetRepository
}

func NewUpdateBudgetController(updateBudgetRepository usecase.UpdateBudgetRepository) *UpdateBudgetController {
	return &UpdateBudgetController{
		Validate:               helpers.NewValidator(),
		UpdateBudgetRepository: updateBudgetRepository,
	}
}

// spent is not accepted here; it only changes through recomputation.
type UpdateBudgetControllerBody struct {
	Category *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Amount   *float64 `json:"amount" validate:"omitempty,gt=0"`
	Period   *string  `json:"period" validate:"omitempty,oneof=Weekly Monthly Quarterly Yearly"`
}

func (c *UpdateBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	budgetId, errResponse := helpers.GetPathObjectId(r, "budgetId")
	if errResponse != nil {
		return errResponse
	}

	var body UpdateBudgetControllerBody
	if errResponse := helpers.DecodeBody(r, c.Validate, &body); errResponse != nil {
		return errResponse
	}

	update := &models.BudgetUpdate{
		Amount: body.Amount,
	}
	if body.Category != nil {
		category := strings.TrimSpace(*body.Category)
		if category == "" {
			return helpers.CreateErrorResponse("category is required", http.StatusBadRequest)
		}
		update.Category = &category
	}
	if body.Period != nil {
		period := models.BudgetPeriod(*body.Period)
		update.Period = &period
	}

	budget, err := c.UpdateBudgetRepository.Update(r.Req.Context(), budgetId, ownerId, update)
	if err != nil {
		return helpers.InternalError(r, log.ComponentBudget, log.OpUpdate, "an error occurred when updating budget", err)
	}
	if budget == nil {
		return helpers.CreateErrorResponse("budget not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(budget, http.StatusOK)
}
