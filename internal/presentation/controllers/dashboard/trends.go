package dashboard

import (
	"net/http"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/calculations"
	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

type GetTrendsController struct {
	FindExpensesRepository usecase.FindExpensesRepository
	Location               *time.Location
	Now                    func() time.Time
}

func NewGetTrendsController(findExpensesRepository usecase.FindExpensesRepository, location *time.Location) *GetTrendsController {
	return &GetTrendsController{
		FindExpensesRepository: findExpensesRepository,
		Location:               location,
		Now:                    time.Now,
	}
}

func (c *GetTrendsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	months, ok := calculations.TrendMonthsForPeriod(r.UrlParams.Get("period"))
	if !ok {
		return helpers.CreateErrorResponse("period must be 6months or 1year", http.StatusBadRequest)
	}

	expenses, err := c.FindExpensesRepository.Find(r.Req.Context(), ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentDashboard, log.OpSummarize, "an error occurred when building trends", err)
	}

	return helpers.CreateResponse(calculations.MonthlyTrends(expenses, c.Now().In(c.Location), months), http.StatusOK)
}
