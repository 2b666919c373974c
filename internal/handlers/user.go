package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/middlewares"
	"github.com/akarpov87/social-feed/internal/models"
	"github.com/akarpov87/social-feed/internal/services"
)

// Profiler defines the interface that the profile service must implement.
type Profiler interface {
	Profile(ctx context.Context, username string) (*models.UserDB, error)
}

// UserLister defines the interface that the ranked user listing must implement.
type UserLister interface {
	Users(ctx context.Context, before *string) ([]models.UserDB, error)
}

// NewCurrentUserHandler returns an HTTP handler for the authenticated user's
// own record.
// @Summary Current user
// @Description Returns the record of the authenticated identity.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB
// @Failure 401 "Missing or invalid token"
// @Router /user [get]
func NewCurrentUserHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.GetIdentityFromContext(r.Context())

		user, err := svc.Profile(r.Context(), identity.Username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				WriteJSON(w, http.StatusNotFound, nil)
			default:
				logger.Log.Errorw("failed to load current user", "err", err)
				WriteJSON(w, http.StatusInternalServerError, nil)
			}
			return
		}

		WriteJSON(w, http.StatusOK, user)
	}
}

// NewProfileHandler returns an HTTP handler for a public user profile.
// @Summary User profile
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.UserDB
// @Failure 404 "Unknown user"
// @Router /users/{username} [get]
func NewProfileHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		user, err := svc.Profile(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				WriteJSON(w, http.StatusNotFound, nil)
			default:
				logger.Log.Errorw("failed to load profile", "username", username, "err", err)
				WriteJSON(w, http.StatusInternalServerError, nil)
			}
			return
		}

		WriteJSON(w, http.StatusOK, user)
	}
}

// NewUsersHandler returns an HTTP handler for the ranked user listing.
// @Summary List users
// @Description Users ranked by post count descending, then username ascending. users_before resumes the ranking after that user.
// @Tags users
// @Produce json
// @Param users_before query string false "Resume cursor (username)"
// @Success 200 {array} models.UserDB
// @Router /users [get]
func NewUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var before *string
		if v := r.URL.Query().Get("users_before"); v != "" {
			before = &v
		}

		users, err := svc.Users(r.Context(), before)
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			WriteJSON(w, http.StatusInternalServerError, nil)
			return
		}

		WriteJSON(w, http.StatusOK, users)
	}
}
