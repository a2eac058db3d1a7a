package expense

import (
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/anuntech/smartspend-backend/internal/domain/models"
	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/infra/spreadsheet"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
	"github.com/google/uuid"
)

const exportKeyPrefix = "expense-export"

// exportStoreKey scopes a download key to its owner so one owner cannot
// fetch another's export by guessing.
func exportStoreKey(ownerId string, key string) string {
	return exportKeyPrefix + ":" + ownerId + ":" + key
}

type ExportExpensesController struct {
	FindExpensesRepository usecase.FindExpensesRepository
	SaveExportRepository   usecase.SaveExportRepository
	TTL                    time.Duration
}

func NewExportExpensesController(
	findExpensesRepository usecase.FindExpensesRepository,
	saveExportRepository usecase.SaveExportRepository,
	ttl time.Duration,
) *ExportExpensesController {
	return &ExportExpensesController{
		FindExpensesRepository: findExpensesRepository,
		SaveExportRepository:   saveExportRepository,
		TTL:                    ttl,
	}
}

func (c *ExportExpensesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	format := models.ExportFormat(strings.ToLower(r.UrlParams.Get("format")))
	switch format {
	case "":
		format = models.ExportXLSX
	case models.ExportXLSX, models.ExportCSV:
	default:
		return helpers.CreateErrorResponse("format must be xlsx or csv", http.StatusBadRequest)
	}

	expenses, err := c.FindExpensesRepository.Find(r.Req.Context(), ownerId)
	if err != nil {
		return helpers.InternalError(r, log.ComponentExport, log.OpExport, "an error occurred when retrieving expenses", err)
	}

	payload, err := spreadsheet.Render(format, expenses)
	if err != nil {
		return helpers.InternalError(r, log.ComponentExport, log.OpExport, "an error occurred when rendering export", err)
	}

	key := uuid.NewString() + "." + string(format)
	if err := c.SaveExportRepository.Save(r.Req.Context(), exportStoreKey(ownerId, key), payload, c.TTL); err != nil {
		return helpers.InternalError(r, log.ComponentExport, log.OpExport, "an error occurred when staging export", err)
	}

	return helpers.CreateResponse(&models.ExportTicket{
		Key:       key,
		Format:    format,
		ExpiresIn: int(c.TTL.Seconds()),
	}, http.StatusCreated)
}

// parseExportKey checks a key has the <uuid>.<format> shape handed out on export.
func parseExportKey(key string) (models.ExportFormat, bool) {
	ext := path.Ext(key)
	if ext == "" {
		return "", false
	}
	if _, err := uuid.Parse(strings.TrimSuffix(key, ext)); err != nil {
		return "", false
	}

	format := models.ExportFormat(strings.TrimPrefix(ext, "."))
	if format != models.ExportXLSX && format != models.ExportCSV {
		return "", false
	}
	return format, true
}
