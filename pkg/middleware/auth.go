// Package middleware provides the HTTP middleware stack for the API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/backoffice/pkg/auth"
	"github.com/shashiranjanraj/backoffice/pkg/response"
)

const bearerPrefix = "Bearer "

// BearerAuth gates every protected route. A missing header (or missing
// Bearer prefix) is 401; a token that fails signature or expiry checks is
// 403. On success the typed claims are stored in the request context and no
// handler re-checks them.
func BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Error(w, http.StatusUnauthorized, "Token not provided")
			return
		}

		token := strings.TrimPrefix(header, bearerPrefix)
		if token == "" {
			response.Error(w, http.StatusUnauthorized, "Token not provided")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusForbidden, "Invalid or expired token")
			return
		}

		ctx := auth.NewContext(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
