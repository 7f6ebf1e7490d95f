// Package recovery converts handler panics into the API's JSON error envelope.
package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/as3d12/instaboard/internal/httpapi/respond"
	"github.com/rs/zerolog/log"
)

// Middleware answers a panicking request with a 500 envelope and logs the
// panic with its stack. http.ErrAbortHandler is re-raised so net/http can
// abort the connection as usual.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Error().
				Interface("panic", rec).
				Str("route", r.Method+" "+r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("handler panic")
			respond.WriteInternalError(w, "internal server error")
		}()
		next.ServeHTTP(w, r)
	})
}
