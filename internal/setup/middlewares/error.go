package middlewares

import (
	"encoding/json"
	"net/http"

	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(&presentationProtocols.ErrorResponse{Message: message})
}
