package middlewares

import (
	"net/http"
	"strings"

	"github.com/anuntech/smartspend-backend/internal/log"
	"github.com/anuntech/smartspend-backend/internal/presentation/helpers"
	"github.com/anuntech/smartspend-backend/internal/utils"
)

const OwnerIdHeader = "X-Owner-Id"

var sessionCookies = []string{"__Secure-next-auth.session-token", "next-auth.session-token"}

// Identity resolves the caller and passes it on in the OwnerId header. A
// session token wins when tokens is configured, then the ownerId query
// parameter, then the X-Owner-Id header. Controllers reject requests that
// end up without an owner.
func Identity(tokens *utils.AccessTokenUtil) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Header.Del(helpers.OwnerHeader)

			if tokens != nil {
				if token := sessionToken(r); token != "" {
					sub, err := tokens.Subject(token)
					if err != nil {
						log.FromContext(r.Context()).Warn("Rejected session token", log.FieldError, err)
						writeError(w, "invalid or expired access token", http.StatusUnauthorized)
						return
					}
					r.Header.Set(helpers.OwnerHeader, sub)
					next.ServeHTTP(w, r)
					return
				}
			}

			ownerId := strings.TrimSpace(r.URL.Query().Get("ownerId"))
			if ownerId == "" {
				ownerId = strings.TrimSpace(r.Header.Get(OwnerIdHeader))
			}
			if ownerId != "" {
				r.Header.Set(helpers.OwnerHeader, ownerId)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func sessionToken(r *http.Request) string {
	for _, name := range sessionCookies {
		if cookie, err := r.Cookie(name); err == nil && cookie.Value != "" {
			return strings.TrimPrefix(cookie.Value, "Bearer ")
		}
	}
	return ""
}
