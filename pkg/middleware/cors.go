package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

var corsMethods = []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}

// CORS allows every origin and reflects whatever headers a preflight asks
// for. It must wrap the router, not a route, so that preflight requests are
// answered before method matching.
func CORS() Middleware {
	return cors.New(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       corsMethods,
		AllowedHeaders:       []string{"*"},
		OptionsSuccessStatus: http.StatusOK,
	}).Handler
}
