package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/middlewares"
	"github.com/akarpov87/social-feed/internal/models"
)

// Follower defines the follow operation.
type Follower interface {
	Follow(ctx context.Context, username, target string) (*models.FollowDB, error)
}

// Unfollower defines the unfollow operation.
type Unfollower interface {
	Unfollow(ctx context.Context, username, target string) error
}

// FollowingLister defines the followings listing operation.
type FollowingLister interface {
	Followings(ctx context.Context, username string) ([]models.FollowDB, error)
}

// FollowRequest represents the JSON body for follow and unfollow
// swagger:model FollowRequest
type FollowRequest struct {
	// Username to follow or unfollow
	// required: true
	Follow string `json:"follow"`
}

// NewFollowHandler returns an HTTP handler for creating a follow edge.
// Idempotent: following an already-followed account returns the existing edge.
// @Summary Follow a user
// @Tags follows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param followRequest body handlers.FollowRequest true "Follow target"
// @Success 200 {object} models.FollowDB
// @Failure 400 "Validation failure, field-level errors in body"
// @Failure 401 "Missing or invalid token"
// @Router /follow [post]
func NewFollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.GetIdentityFromContext(r.Context())

		var req FollowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteJSON(w, http.StatusBadRequest, nil)
			return
		}

		edge, err := svc.Follow(r.Context(), identity.Username, req.Follow)
		if err != nil {
			logger.Log.Errorw("failed to follow", "target", req.Follow, "err", err)
			WriteJSON(w, http.StatusInternalServerError, nil)
			return
		}

		WriteJSON(w, http.StatusOK, edge)
	}
}

// NewUnfollowHandler returns an HTTP handler for removing a follow edge.
// Unconditional: removing an absent edge succeeds.
// @Summary Unfollow a user
// @Tags follows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param followRequest body handlers.FollowRequest true "Unfollow target"
// @Success 200 "Edge removed or already absent"
// @Failure 401 "Missing or invalid token"
// @Router /unfollow [post]
func NewUnfollowHandler(svc Unfollower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.GetIdentityFromContext(r.Context())

		var req FollowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteJSON(w, http.StatusBadRequest, nil)
			return
		}

		if err := svc.Unfollow(r.Context(), identity.Username, req.Follow); err != nil {
			logger.Log.Errorw("failed to unfollow", "target", req.Follow, "err", err)
			WriteJSON(w, http.StatusInternalServerError, nil)
			return
		}

		WriteJSON(w, http.StatusOK, nil)
	}
}

// NewFollowingsHandler returns an HTTP handler listing the accounts the
// authenticated user follows.
// @Summary List followings
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.FollowDB
// @Failure 401 "Missing or invalid token"
// @Router /followings [get]
func NewFollowingsHandler(svc FollowingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.GetIdentityFromContext(r.Context())

		follows, err := svc.Followings(r.Context(), identity.Username)
		if err != nil {
			logger.Log.Errorw("failed to list followings", "err", err)
			WriteJSON(w, http.StatusInternalServerError, nil)
			return
		}

		WriteJSON(w, http.StatusOK, follows)
	}
}
