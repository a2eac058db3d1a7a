package expense

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/domain/usecase"
	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

type DownloadExportController struct {
	FindExportRepository usecase.FindExportRepository
}

func NewDownloadExportController(findExportRepository usecase.FindExportRepository) *DownloadExportController {
	return &DownloadExportController{
		FindExportRepository: findExportRepository,
	}
}

func (c *DownloadExportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	ownerId, errResponse := helpers.GetOwnerId(r)
	if errResponse != nil {
		return errResponse
	}

	key := r.Req.PathValue("key")
	format, ok := parseExportKey(key)
	if !ok {
		return helpers.CreateErrorResponse("invalid export key", http.StatusBadRequest)
	}

	payload, err := c.FindExportRepository.Find(r.Req.Context(), exportStoreKey(ownerId, key))
	if err != nil {
		return helpers.InternalError(r, log.ComponentExport, log.OpRead, "an error occurred when finding export", err)
	}
	if payload == nil {
		return helpers.CreateErrorResponse("export not found or expired", http.StatusNotFound)
	}

	return helpers.CreateFileResponse(payload, format.ContentType(), "expenses."+string(format))
}
