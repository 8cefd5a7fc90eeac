package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perr "papersync/internal/platform/errors"
	pnet "papersync/internal/platform/net"
)

// BearerToken guards routes with a static bearer token
// empty token disables the guard so local runs stay friction free
func BearerToken(token string, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				status, body := pnet.Error(perr.Unauthorizedf("invalid or missing bearer token"), pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
