package expense

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

type UpdateExpenseController struct {
	Validate                *validator.Validate
	UpdateExpenseRepository usecase.UpdateExpenseRepository
	Location                *time.Location
}

func NewUpdateExpenseController(updateExpenseRepository usecase.UpdateExpenseRepository, location *time.Location) *UpdateExpenseController {
	return &UpdateExpenseController{
		Validate:                helpers.NewValidator(),
		UpdateExpenseRepository: updateExpenseRepository,
		Location:                location,
	}
}

// Only the fields present in the body are overwritten.
type UpdateExpenseControllerBody struct {
	Category    *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Date        *string  `json:"date"`
	Description *string  `json:"description" validate:"omitempty,min=1,max=255"`
}

func (c *UpdateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	expenseId, errResponse := helpers.GetPathObjectId(r, "expenseId")
	if errResponse != nil {
		return errResponse
	}

	var body UpdateExpenseControllerBody
	if errResponse := helpers.DecodeBody(r, c.Validate, &body); errResponse != nil {
		return errResponse
	}

	update := &models.ExpenseUpdate{
		Amount: body.Amount,
	}
	if body.Category != nil {
		category := strings.TrimSpace(*body.Category)
		if category == "" {
			return helpers.CreateErrorResponse("category is required", http.StatusBadRequest)
		}
		update.Category = &category
	}
	if body.Description != nil {
		description := strings.TrimSpace(*body.Description)
		update.Description = &description
	}
	if body.Date != nil {
		date, err := helpers.ParseDate(*body.Date, c.Location)
		if err != nil {
			return helpers.CreateErrorResponse("invalid date format", http.StatusBadRequest)
		}
		update.Date = &date
	}

	expense, err := c.UpdateExpenseRepository.Update(r.Req.Context(), expenseId, ownerId, update)
	if err != nil {
		return helpers.InternalError(r, log.ComponentExpense, log.OpUpdate, "an error occurred when updating expense", err)
	}
	if expense == nil {
		return helpers.CreateErrorResponse("expense not found", http.StatusNotFound)
	}

	return helpers.CreateResponse(expense, http.StatusOK)
}
