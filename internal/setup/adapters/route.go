package adapters

import (
	"io"
	"net/http"

	"github.com/anuntech/smartspend-backend/internal/log"
	presentationProtocols "github.com/anuntech/smartspend-backend/internal/presentation/protocols"
)

// AdaptRoute turns a controller into an http.Handler.
func AdaptRoute(controller presentationProtocols.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		for key, values := range response.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.WriteHeader(response.StatusCode)

		if response.Body == nil {
			return
		}
		defer response.Body.Close()

		if _, err := io.Copy(w, response.Body); err != nil {
			log.FromContext(r.Context()).Warn("Error writing response body", log.FieldError, err)
		}
	})
}
