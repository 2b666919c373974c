package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/middlewares"
	"github.com/akarpov87/social-feed/internal/models"
	"github.com/akarpov87/social-feed/internal/services"
)

// Liker defines the like operation.
type Liker interface {
	Like(ctx context.Context, viewer string, id int64) (*models.PostDB, error)
}

// Unliker defines the unlike operation.
type Unliker interface {
	Unlike(ctx context.Context, viewer string, id int64) (*models.PostDB, error)
}

// NewLikeHandler returns an HTTP handler for liking a post. Idempotent:
// repeated likes return the unchanged post with is_liked true.
// @Summary Like a post
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Post id"
// @Success 200 {object} models.PostDB
// @Failure 401 "Missing or invalid token"
// @Failure 404 "Unknown post"
// @Router /posts/{id}/likes [post]
func NewLikeHandler(svc Liker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.GetIdentityFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, nil)
			return
		}

		post, err := svc.Like(r.Context(), identity.Username, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				WriteJSON(w, http.StatusNotFound, nil)
			default:
				logger.Log.Errorw("failed to like post", "id", id, "err", err)
				WriteJSON(w, http.StatusInternalServerError, nil)
			}
			return
		}

		WriteJSON(w, http.StatusOK, post)
	}
}

// NewUnlikeHandler returns an HTTP handler for removing a like. Removing an
// absent like is a no-op; the current post state is always returned.
// @Summary Unlike a post
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Post id"
// @Success 200 {object} models.PostDB
// @Failure 401 "Missing or invalid token"
// @Failure 404 "Unknown post"
// @Router /posts/{id}/likes [delete]
func NewUnlikeHandler(svc Unliker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.GetIdentityFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, nil)
			return
		}

		post, err := svc.Unlike(r.Context(), identity.Username, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				WriteJSON(w, http.StatusNotFound, nil)
			default:
				logger.Log.Errorw("failed to unlike post", "id", id, "err", err)
				WriteJSON(w, http.StatusInternalServerError, nil)
			}
			return
		}

		WriteJSON(w, http.StatusOK, post)
	}
}
