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

type CreateBudgetController struct {
	Validate               *validator.Validate
	CreateBudgetRepository usecase.CreateBudgetRepository
}

func NewCreateBudgetController(createBudgetRepository usecase.CreateBudgetRepository) *CreateBudgetController {
	return &CreateBudgetController{
		Validate:               helpers.NewValidator(),
		CreateBudgetRepository: createBudgetRepository,
	}
}

type CreateBudgetControllerBody struct {
	Category string  `json:"category" validate:"required,min=1,max=100"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Spent    float64 `json:"spent" validate:"min=0"`
	Period   string  `json:"period" validate:"omitempty,oneof=Weekly Monthly Quarterly Yearly"`
}

func (c *CreateBudgetController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	var body CreateBudgetControllerBody
	if errResponse := helpers.DecodeBody(r, c.Validate, &body); errResponse != nil {
		return errResponse
	}

	category := strings.TrimSpace(body.Category)
	if category == "" {
		return helpers.CreateErrorResponse("category is required", http.StatusBadRequest)
	}

	period := models.BudgetPeriod(body.Period)
	if period == "" {
		period = models.PeriodMonthly
	}

	budget, err := c.CreateBudgetRepository.Create(r.Req.Context(), &models.Budget{
		Category: category,
		Amount:   body.Amount,
		Spent:    body.Spent,
		Period:   period,
		OwnerId:  ownerId,
	})
	if err != nil {
		return helpers.InternalError(r, log.ComponentBudget, log.OpCreate, "an error occurred when creating budget", err)
	}

	return helpers.CreateResponse(budget, http.StatusCreated)
}
