package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/anuntech/smartspend-backend/internal/log"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.FromContext(r.Context()).Error("Panic while serving request",
					log.FieldError, err,
					log.FieldPath, r.URL.Path,
					"stack", string(debug.Stack()),
				)

				writeError(w, "an unexpected error occurred, please try again", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
