package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/response"
)

// Authenticator issues a session token for a valid credential pair.
type Authenticator interface {
	Login(email, password string) (string, error)
}

type AuthController struct {
	service Authenticator
}

func NewAuthController() *AuthController {
	return &AuthController{
		service: services.NewAuthService(),
	}
}

// Login exchanges the configured email/password pair for a one-hour token.
// Every mismatch answers the same 401 so the identity cannot be probed.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := c.service.Login(body.Email, body.Password)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("login rejected", "error", err)
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	response.Success(w, map[string]string{"token": token})
}
