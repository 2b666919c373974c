package services

import (
	"context"
	"errors"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/models"
)

var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// RankedUserReader defines read operations for user listing and profiles.
type RankedUserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	ListRanked(ctx context.Context, before *string, limit int) ([]models.UserDB, error)
}

// FollowReader defines read operations for follow edges.
type FollowReader interface {
	ListByUsername(ctx context.Context, username string) ([]models.FollowDB, error)
}

// FollowWriter defines write operations for follow edges.
type FollowWriter interface {
	SaveIfAbsent(ctx context.Context, username, following string) (bool, error)
	Delete(ctx context.Context, username, following string) error
}

// SocialService handles the follow graph and user listings.
type SocialService struct {
	users       RankedUserReader
	followRead  FollowReader
	followWrite FollowWriter

	pageSize int
}

// NewSocialService creates a new SocialService instance.
func NewSocialService(users RankedUserReader, followRead FollowReader, followWrite FollowWriter) *SocialService {
	return &SocialService{
		users:       users,
		followRead:  followRead,
		followWrite: followWrite,
		pageSize:    10,
	}
}

// Follow creates the follow edge from username to target. Idempotent: an
// existing edge is returned unchanged with no duplicate insert.
func (svc *SocialService) Follow(ctx context.Context, username, target string) (*models.FollowDB, error) {
	if _, err := svc.followWrite.SaveIfAbsent(ctx, username, target); err != nil {
		logger.Log.Errorw("failed to save follow edge", "username", username, "target", target, "err", err)
		return nil, err
	}

	return &models.FollowDB{Username: username, Following: target}, nil
}

// Unfollow removes the follow edge unconditionally; no error if absent.
func (svc *SocialService) Unfollow(ctx context.Context, username, target string) error {
	if err := svc.followWrite.Delete(ctx, username, target); err != nil {
		logger.Log.Errorw("failed to delete follow edge", "username", username, "target", target, "err", err)
		return err
	}
	return nil
}

// Followings returns the follow edges of a user.
func (svc *SocialService) Followings(ctx context.Context, username string) ([]models.FollowDB, error) {
	follows, err := svc.followRead.ListByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list followings", "username", username, "err", err)
		return nil, err
	}
	return follows, nil
}

// Users returns a page of users ranked by post count descending, then
// username ascending, resumable at the before cursor.
func (svc *SocialService) Users(ctx context.Context, before *string) ([]models.UserDB, error) {
	users, err := svc.users.ListRanked(ctx, before, svc.pageSize)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Profile returns a single user by username.
func (svc *SocialService) Profile(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
