package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/response"
)

// Recovery converts a downstream panic into a 500 response. The panic value
// and stack are logged with the request's logger; the client sees only the
// generic message.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			logger.WithCtx(r.Context()).Error("panic recovered",
				"panic", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)
			response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		}()
		next.ServeHTTP(w, r)
	})
}
