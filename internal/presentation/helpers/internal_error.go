package helpers

import (
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/log"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

// InternalError logs err on the request logger and answers with a generic 500.
func InternalError(r presentationProtocols.HttpRequest, component string, operation string, message string, err error) *presentationProtocols.HttpResponse {
	logger := log.FromContext(r.Req.Context()).WithComponent(component)
	logger.Error(message,
		log.FieldOperation, operation,
		log.FieldOwnerID, r.Header.Get(OwnerHeader),
		log.FieldError, err,
	)

	return CreateErrorResponse(message, http.StatusInternalServerError)
}
