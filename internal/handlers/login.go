package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*services.Credentials, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: jane.doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: BraveOtter
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate with generated credentials and receive a fresh token. Wrong username and wrong password are indistinguishable.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} services.Credentials "Identity and token"
// @Failure 400 "Bad credentials or malformed body"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteJSON(w, http.StatusBadRequest, nil)
			return
		}

		creds, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				WriteJSON(w, http.StatusBadRequest, nil)
			default:
				logger.Log.Errorw("login failed", "err", err)
				WriteJSON(w, http.StatusInternalServerError, nil)
			}
			return
		}

		WriteJSON(w, http.StatusOK, creds)
	}
}
