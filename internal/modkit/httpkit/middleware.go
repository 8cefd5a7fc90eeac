package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "papersync/internal/platform/net/http"
	"papersync/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
// compose with the bearer token guard as needed in main
func CommonStack(corsOrigins []string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 2 * time.Second}),

		// cross-origin
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: corsOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(30 * time.Second),
	}
}

// Auth wires the bearer token guard to the platform JSON writer
func Auth(token string) func(http.Handler) http.Handler {
	return middleware.BearerToken(token, phttp.JSON)
}
