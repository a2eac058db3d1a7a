package savings

import (
	"net/http"
	"strings"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateSavingsGoalController struct {
	Validate                    *validator.Validate
	CreateSavingsGoalRepository usecase.CreateSavingsGoalRepository
	Location                    *time.Location
}

func NewCreateSavingsGoalController(createSavingsGoalRepository usecase.CreateSavingsGoalRepository, location *time.Location) *CreateSavingsGoalController {
	return &CreateSavingsGoalController{
		Validate:                    helpers.NewValidator(),
		CreateSavingsGoalRepository: createSavingsGoalRepository,
		Location:                    location,
	}
}

type CreateSavingsGoalControllerBody struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	TargetAmount  float64 `json:"targetAmount" validate:"required,gt=0"`
	CurrentAmount float64 `json:"currentAmount" validate:"min=0"`
	Deadline      string  `json:"deadline" validate:"required"`
}

func (c *CreateSavingsGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	var body CreateSavingsGoalControllerBody
	if errResponse := helpers.DecodeBody(r, c.Validate, &body); errResponse != nil {
		return errResponse
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		return helpers.CreateErrorResponse("name is required", http.StatusBadRequest)
	}

	deadline, err := helpers.ParseDate(body.Deadline, c.Location)
	if err != nil {
		return helpers.CreateErrorResponse("invalid deadline format", http.StatusBadRequest)
	}

	goal, err := c.CreateSavingsGoalRepository.Create(r.Req.Context(), &models.SavingsGoal{
		Name:          name,
		TargetAmount:  body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
		Deadline:      deadline,
		OwnerId:       ownerId,
	})
	if err != nil {
		return helpers.InternalError(r, log.ComponentSavings, log.OpCreate, "an error occurred when creating savings goal", err)
	}

	return helpers.CreateResponse(goal, http.StatusCreated)
}
