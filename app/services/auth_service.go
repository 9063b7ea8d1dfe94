package services

import (
	"crypto/subtle"
	"fmt"

	"github.com/shashiranjanraj/backoffice/app/apperr"
	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/pkg/auth"
)

// AuthService verifies the single configured back-office identity and issues
// session tokens. There is no user table; the check is stateless per call.
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login checks the submitted pair against the configured identity and returns
// a signed one-hour token. Any mismatch yields the same error.
func (s *AuthService) Login(email, password string) (string, error) {
	adminEmail := config.AdminEmail()
	adminPassword := config.AdminPassword()

	// An unset identity disables login; the empty pair never authenticates.
	if adminEmail == "" || adminPassword == "" {
		return "", apperr.ErrInvalidCredentials
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(adminEmail)) == 1
	passOK := auth.VerifyPassword(adminPassword, password)

	if !emailOK || !passOK {
		return "", apperr.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(email)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
