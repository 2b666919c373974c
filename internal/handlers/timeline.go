package handlers

import (
	"context"
	"net/http"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/middlewares"
	"github.com/akarpov87/social-feed/internal/models"
)

// TimelineLister defines the timeline assembly operation.
type TimelineLister interface {
	Timeline(ctx context.Context, viewer string, before *int64) ([]models.PostDB, error)
}

// NewTimelineHandler returns an HTTP handler for the viewer's timeline: their
// own posts merged with posts from followed accounts, newest first.
// @Summary Timeline
// @Description Posts by the viewer and by accounts the viewer follows, ordered by (created_at, id) descending.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param posts_before query integer false "Return only posts with id strictly below"
// @Success 200 {array} models.PostDB
// @Failure 401 "Missing or invalid token"
// @Router /timeline [get]
func NewTimelineHandler(svc TimelineLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middlewares.GetIdentityFromContext(r.Context())

		before, err := parseBeforeCursor(r, "posts_before")
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, nil)
			return
		}

		posts, err := svc.Timeline(r.Context(), identity.Username, before)
		if err != nil {
			logger.Log.Errorw("failed to assemble timeline", "viewer", identity.Username, "err", err)
			WriteJSON(w, http.StatusInternalServerError, nil)
			return
		}

		WriteJSON(w, http.StatusOK, posts)
	}
}
