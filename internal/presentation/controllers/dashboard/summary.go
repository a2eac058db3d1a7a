package dashboard

import (
	"net/http"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

// GetSummaryController reports totals from the cached budget spent values;
// it never triggers a recomputation.
type GetSummaryController struct {
	DashboardSummary usecase.DashboardSummaryUseCase
	Location         *time.Location
	Now              func() time.Time
}

func NewGetSummaryController(dashboardSummary usecase.DashboardSummaryUseCase, location *time.Location) *GetSummaryController {
	return &GetSummaryController{
		DashboardSummary: dashboardSummary,
		Location:         location,
		Now:              time.Now,
	}
}

func (c *GetSummaryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	summary, err := c.DashboardSummary.Summary(r.Req.Context(), ownerId, c.Now().In(c.Location))
	if err != nil {
		return helpers.InternalError(r, log.ComponentDashboard, log.OpSummarize, "an error occurred when building dashboard summary", err)
	}

	return helpers.CreateResponse(summary, http.StatusOK)
}
