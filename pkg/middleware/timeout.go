package middleware

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
)

const timeoutMessage = `{"error":"Request timed out"}`

// Timeout answers with a JSON 500 when h outlives the timeout. Handlers
// behind it never produce a 503 themselves, so the one written by
// http.TimeoutHandler is always a timeout.
func Timeout(timeout time.Duration) Middleware {
	return func(h http.Handler) http.Handler {
		th := http.TimeoutHandler(h, timeout, timeoutMessage)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(contentTypeHeader, contentTypeJSON)

			tw := httpsnoop.Wrap(w, httpsnoop.Hooks{
				WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(code int) {
						if code == http.StatusServiceUnavailable {
							code = http.StatusInternalServerError
						}
						next(code)
					}
				},
			})
			th.ServeHTTP(tw, r)
		})
	}
}
