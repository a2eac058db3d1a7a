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

type CreateExpenseController struct {
	Validate                *validator.Validate
	CreateExpenseRepository usecase.CreateExpenseRepository
	Location                *time.Location
	Now                     func() time.Time
}

func NewCreateExpenseController(createExpenseRepository usecase.CreateExpenseRepository, location *time.Location) *CreateExpenseController {
	return &CreateExpenseController{
		Validate:                helpers.NewValidator(),
		CreateExpenseRepository: createExpenseRepository,
		Location:                location,
		Now:                     time.Now,
	}
}

type CreateExpenseControllerBody struct {
	Category    string  `json:"category" validate:"required,min=1,max=100"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Date        string  `json:"date"`
	Description string  `json:"description" validate:"required,min=1,max=255"`
}

func (c *CreateExpenseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	var body CreateExpenseControllerBody
	if errResponse := helpers.DecodeBody(r, c.Validate, &body); errResponse != nil {
		return errResponse
	}

	category := strings.TrimSpace(body.Category)
	if category == "" {
		return helpers.CreateErrorResponse("category is required", http.StatusBadRequest)
	}

	date := c.Now().In(c.Location)
	if body.Date != "" {
		parsed, err := helpers.ParseDate(body.Date, c.Location)
		if err != nil {
			return helpers.CreateErrorResponse("invalid date format", http.StatusBadRequest)
		}
		date = parsed
	}

	expense, err := c.CreateExpenseRepository.Create(r.Req.Context(), &models.Expense{
		Category:    category,
		Amount:      body.Amount,
		Date:        date,
		Description: strings.TrimSpace(body.Description),
		OwnerId:     ownerId,
	})
	if err != nil {
		return helpers.InternalError(r, log.ComponentExpense, log.OpCreate, "an error occurred when creating expense", err)
	}

	return helpers.CreateResponse(expense, http.StatusCreated)
}
