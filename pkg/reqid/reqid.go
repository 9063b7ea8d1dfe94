// Package reqid tags every HTTP request with a correlation ID. The ID rides
// the request context and the X-Request-ID header, and the logging middleware
// stamps it onto every log line for that request.
package reqid

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

// Header carries the request ID on the wire, inbound and outbound.
const Header = "X-Request-ID"

// A client-supplied ID longer than this is ignored and replaced.
const maxInboundLen = 64

type ctxKey struct{}

// New returns a 32-character random hex ID.
func New() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// NewContext returns a copy of ctx carrying the request ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID, or "" when the request was never
// routed through Middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Middleware ensures every request has an ID: an inbound X-Request-ID is
// kept so callers can correlate across services, anything else gets a fresh
// one. The ID is echoed on the response.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if id == "" || len(id) > maxInboundLen {
				id = New()
			}
			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), id)))
		})
	}
}
