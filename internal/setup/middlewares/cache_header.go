package middlewares

import "net/http"

// NoStoreHeader keeps owner scoped responses out of shared caches.
func NoStoreHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
