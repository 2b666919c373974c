package handlers

import (
	"context"
	"net/http"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context) (*services.Credentials, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// Credentials are generated server-side; the response is the only time the
// plaintext password is revealed.
// @Summary Register a new user
// @Description Creates a user with a generated username and password and returns them with a signed token.
// @Tags auth
// @Produce json
// @Success 200 {object} services.Credentials "Generated credentials and token"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, err := svc.Register(r.Context())
		if err != nil {
			logger.Log.Errorw("registration failed", "err", err)
			WriteJSON(w, http.StatusInternalServerError, nil)
			return
		}

		WriteJSON(w, http.StatusOK, creds)
	}
}
