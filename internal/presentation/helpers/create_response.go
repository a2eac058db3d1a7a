package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

func CreateResponse(body any, statusCode int) *presentationProtocols.HttpResponse {
	header := http.Header{}
	if body == nil {
		return &presentationProtocols.HttpResponse{
			Header:     header,
			StatusCode: statusCode,
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		payload, _ = json.Marshal(&presentationProtocols.ErrorResponse{
			Message: "error encoding response",
		})
		statusCode = http.StatusInternalServerError
	}

	header.Set("Content-Type", "application/json")
	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(payload)),
		Header:     header,
		StatusCode: statusCode,
	}
}

func CreateErrorResponse(message string, statusCode int) *presentationProtocols.HttpResponse {
	return CreateResponse(&presentationProtocols.ErrorResponse{
		Message: message,
	}, statusCode)
}

// CreateFileResponse sends raw bytes as a download.
func CreateFileResponse(payload []byte, contentType string, filename string) *presentationProtocols.HttpResponse {
	header := http.Header{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(payload)),
		Header:     header,
		StatusCode: http.StatusOK,
	}
}
