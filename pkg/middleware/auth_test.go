package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/backoffice/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true

		claims, ok := auth.FromContext(r.Context())
		require.True(t, ok, "claims must be in the request context")
		assert.Equal(t, "admin@example.com", claims.Email)

		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuthMissingToken(t *testing.T) {
	for _, header := range []string{"", "Bearer ", "Basic abc", "token-without-prefix"} {
		called := false
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		BearerAuth(protectedHandler(t, &called)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.False(t, called, "handler must not run, header %q", header)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Token not provided", body["error"])
	}
}

func TestBearerAuthInvalidToken(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer not.a.valid.token")

	BearerAuth(protectedHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid or expired token", body["error"])
}

func TestBearerAuthValidToken(t *testing.T) {
	token, err := auth.GenerateToken("admin@example.com")
	require.NoError(t, err)

	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	BearerAuth(protectedHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
