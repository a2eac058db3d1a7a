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

type UpdateSavingsGoalController struct {
	Validate                    *validator.Validate
	UpdateSavingsGoalRepository usecase.UpdateSavingsGoalRepository
	Location                    *time.Location
}

func NewUpdateSavingsGoalController(updateSavingsGoalRepository usecase.UpdateSavingsGoalRepository, location *time.Location) *UpdateSavingsGoalController {
	return &UpdateSavingsGoalController{
		Validate:                    helpers.NewValidator(),
		UpdateSavingsGoalRepository: updateSavingsGoalRepository,
		Location:                    location,
	}
}

type UpdateSavingsGoalControllerBody struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=100"`
	TargetAmount  *float64 `json:"targetAmount" validate:"omitempty,gt=0"`
	CurrentAmount *float64 `json:"currentAmount" validate:"omitempty,min=0"`
	Deadline      *string  `json:"deadline"`
}

func (c *UpdateSavingsGoalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	goalId, errResponse := helpers.GetPathObjectId(r, "goalId")
	if errResponse != nil {
		return errResponse
	}

	var body UpdateSavingsGoalControllerBody
	if errResponse := helpers.DecodeBody(r, c.Validate, &body); errResponse != nil {
		return errResponse
	}

	update := &models.SavingsGoalUpdate{
		TargetAmount:  body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
	}
	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			return helpers.CreateErrorResponse("name is required", http.StatusBadRequest)
		}
		update.Name = &name
	}
	if body.Deadline != nil {
		deadline, err := helpers.ParseDate(*body.Deadline, c.Location)
		if err != nil {
			return helpers.CreateErrorResponse("invalid deadline format", http.StatusBadRequest)
		}
		update.Deadline = &deadline
	}

	goal, err := c.UpdateSavingsGoalRepository.Update(r.Req.Context(), goalId, ownerId, update)
	if err != nil {
		return helpers.InternalError(r, log.ComponentSavings, log.OpUpdate, "an error occurred when updating savings goal", err)
	}
	if goal == nil {
		return helpers.CreateErrorResponse("savings goal not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(goal, http.StatusOK)
}
