package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, TokenTTL, ttl)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken("admin@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestVerifyPasswordPlaintext(t *testing.T) {
	assert.True(t, VerifyPassword("s3cret", "s3cret"))
	assert.False(t, VerifyPassword("s3cret", "wrong"))
	assert.False(t, VerifyPassword("", "anything"))
}

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}

func TestClaimsContextRoundTrip(t *testing.T) {
	claims := &Claims{Email: "admin@example.com"}

	ctx := NewContext(context.Background(), claims)
	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, claims, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
