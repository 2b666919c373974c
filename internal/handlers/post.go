package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/middlewares"
	"github.com/akarpov87/social-feed/internal/models"
	"github.com/akarpov87/social-feed/internal/services"
)

// PostLister defines the per-user feed operation.
type PostLister interface {
	UserPosts(ctx context.Context, viewer *string, owner string, before *int64) ([]models.PostDB, error)
}

// PostCreator defines the post creation operation.
type PostCreator interface {
	CreatePost(ctx context.Context, username, message string) (*models.PostDB, error)
}

// PostDeleter defines the owner-only post deletion operation.
type PostDeleter interface {
	DeletePost(ctx context.Context, username string, id int64) error
}

// CreatePostRequest represents the JSON body for creating a post
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Message, constrained to the permitted lines when moderation is enabled
	// required: true
	Message string `json:"message"`
}

// parseBeforeCursor reads an optional strictly-before pagination cursor from
// the named query parameter.
func parseBeforeCursor(r *http.Request, param string) (*int64, error) {
	v := r.URL.Query().Get(param)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// NewUserPostsHandler returns an HTTP handler for a user's post feed.
// Authentication is optional: an authenticated viewer gets personalized
// is_liked flags, an anonymous one gets them unset.
// @Summary List a user's posts
// @Description Posts authored by the user, oldest first, annotated with the viewer's like-state.
// @Tags posts
// @Produce json
// @Param username path string true "Owner username"
// @Param posts_before query integer false "Return only posts with id strictly below"
// @Success 200 {array} models.PostDB
// @Failure 400 "Malformed cursor"
// @Router /users/{username}/posts [get]
func NewUserPostsHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := chi.URLParam(r, "username")

		before, err := parseBeforeCursor(r, "posts_before")
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, nil)
			return
		}

		var viewer *string
		if identity := middlewares.GetIdentityFromContext(r.Context()); identity != nil {
			viewer = &identity.Username
		}

		posts, err := svc.UserPosts(r.Context(), viewer, owner, before)
		if err != nil {
			logger.Log.Errorw("failed to list posts", "owner", owner, "err", err)
			WriteJSON(w, http.StatusInternalServerError, nil)
			return
		}

		WriteJSON(w, http.StatusOK, posts)
	}
}

// NewCreatePostHandler returns an HTTP handler for posting a message.
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createPostRequest body handlers.CreatePostRequest true "Post body"
// @Success 200 {object} models.PostDB
// @Failure 400 "Validation failure, field-level errors in body"
// @Failure 401 "Missing or invalid token"
// @Router /posts [post]
func NewCreatePostHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.GetIdentityFromContext(r.Context())

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteJSON(w, http.StatusBadRequest, nil)
			return
		}

		post, err := svc.CreatePost(r.Context(), identity.Username, req.Message)
		if err != nil {
			logger.Log.Errorw("failed to create post", "username", identity.Username, "err", err)
			WriteJSON(w, http.StatusInternalServerError, nil)
			return
		}

		WriteJSON(w, http.StatusOK, post)
	}
}

// NewDeletePostHandler returns an HTTP handler for deleting an owned post.
// The ownership check happens before any mutation; a non-owner gets 401 and
// no state changes.
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path integer true "Post id"
// @Success 200 "Deleted"
// @Failure 401 "Not the owner"
// @Failure 404 "Unknown post"
// @Router /posts/{id} [delete]
func NewDeletePostHandler(svc PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.GetIdentityFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, nil)
			return
		}

		if err := svc.DeletePost(r.Context(), identity.Username, id); err != nil {
			switch {
			case errors.Is(err, services.ErrPostNotFound):
				WriteJSON(w, http.StatusNotFound, nil)
			case errors.Is(err, services.ErrNotPostOwner):
				WriteJSON(w, http.StatusUnauthorized, nil)
			default:
				logger.Log.Errorw("failed to delete post", "id", id, "err", err)
				WriteJSON(w, http.StatusInternalServerError, nil)
			}
			return
		}

		WriteJSON(w, http.StatusOK, nil)
	}
}
