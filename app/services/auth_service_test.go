package services

import (
	"testing"

	"github.com/shashiranjanraj/backoffice/app/apperr"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesTokenForConfiguredIdentity(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	token, err := NewAuthService().Login("admin@example.com", "s3cret")

	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLoginAcceptsBcryptStoredPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", hash)

	_, err = NewAuthService().Login("admin@example.com", "s3cret")
	assert.NoError(t, err)
}

func TestLoginDisabledWhileIdentityUnset(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := NewAuthService().Login("", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestLoginRejectsAnyMismatch(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong email", "intruder@example.com", "s3cret"},
		{"wrong password", "admin@example.com", "nope"},
		{"both wrong", "intruder@example.com", "nope"},
		{"empty pair", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAuthService().Login(tc.email, tc.password)
			assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
		})
	}
}
