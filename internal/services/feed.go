package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/models"
)

var (
	// ErrPostNotFound is returned when the referenced post does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrNotPostOwner is returned when a user tries to delete a post they do not own.
	ErrNotPostOwner = errors.New("post is owned by another user")
)

// PostReader defines read operations for posts.
type PostReader interface {
	GetByID(ctx context.Context, viewer *string, id int64) (*models.PostDB, error)
	ListByUsername(ctx context.Context, viewer *string, owner string, before *int64, limit int) ([]models.PostDB, error)
	ListTimeline(ctx context.Context, viewer string, before *int64, limit int) ([]models.PostDB, error)
}

// PostWriter defines write operations for posts.
type PostWriter interface {
	Save(ctx context.Context, username, message string) (*models.PostDB, error)
	Delete(ctx context.Context, id int64) error
}

// LikeWriter defines write operations for like edges.
type LikeWriter interface {
	SaveIfAbsent(ctx context.Context, username string, postID int64) (bool, error)
	Delete(ctx context.Context, username string, postID int64) error
	DeleteByPost(ctx context.Context, postID int64) error
	RecountLikes(ctx context.Context, postID int64) error
}

// PostCounter recomputes a user's denormalized post count.
type PostCounter interface {
	RecountPosts(ctx context.Context, username string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FeedService assembles the paginated, like-annotated post feeds and handles
// post and like mutations.
type FeedService struct {
	postRead    PostReader
	postWrite   PostWriter
	likeWrite   LikeWriter
	userCount   PostCounter
	kafkaWriter KafkaWriter

	userPageSize     int // page size for per-user feeds
	timelinePageSize int // page size for the timeline
}

// NewFeedService creates a new FeedService. kafkaWriter may be nil to disable
// activity events.
func NewFeedService(
	postRead PostReader,
	postWrite PostWriter,
	likeWrite LikeWriter,
	userCount PostCounter,
	kafkaWriter KafkaWriter,
) *FeedService {
	return &FeedService{
		postRead:         postRead,
		postWrite:        postWrite,
		likeWrite:        likeWrite,
		userCount:        userCount,
		kafkaWriter:      kafkaWriter,
		userPageSize:     20,
		timelinePageSize: 10,
	}
}

// publishActivity publishes a feed mutation to Kafka. Failures are logged and
// never fail the mutation.
func (s *FeedService) publishActivity(ctx context.Context, operation, username string, postID int64) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.ActivityEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		Username:  username,
		PostID:    postID,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal activity event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish activity event", "event_id", event.EventID, "error", err)
	}
}

// UserPosts returns a page of posts authored by owner, oldest first, annotated
// with the viewer's like-state. viewer is nil for anonymous requests. before
// restricts the page to post ids strictly below the cursor.
func (s *FeedService) UserPosts(ctx context.Context, viewer *string, owner string, before *int64) ([]models.PostDB, error) {
	posts, err := s.postRead.ListByUsername(ctx, viewer, owner, before, s.userPageSize)
	if err != nil {
		logger.Log.Errorw("failed to list user posts", "owner", owner, "error", err)
		return nil, err
	}
	return posts, nil
}

// Timeline returns a page of the viewer's feed: their own posts merged with
// posts from accounts they follow, newest first.
func (s *FeedService) Timeline(ctx context.Context, viewer string, before *int64) ([]models.PostDB, error) {
	posts, err := s.postRead.ListTimeline(ctx, viewer, before, s.timelinePageSize)
	if err != nil {
		logger.Log.Errorw("failed to list timeline", "viewer", viewer, "error", err)
		return nil, err
	}
	return posts, nil
}

// CreatePost inserts a post, reads the row back and recomputes the author's
// post count in the same request transaction.
func (s *FeedService) CreatePost(ctx context.Context, username, message string) (*models.PostDB, error) {
	post, err := s.postWrite.Save(ctx, username, message)
	if err != nil {
		logger.Log.Errorw("failed to save post", "username", username, "error", err)
		return nil, err
	}

	if err := s.userCount.RecountPosts(ctx, username); err != nil {
		logger.Log.Errorw("failed to recount posts", "username", username, "error", err)
		return nil, err
	}

	s.publishActivity(ctx, "post_created", username, post.ID)

	return post, nil
}

// DeletePost removes a post owned by username. The ownership check happens
// before any mutation; like edges go first, then the post, then the owner's
// post count is recomputed.
func (s *FeedService) DeletePost(ctx context.Context, username string, id int64) error {
	post, err := s.postRead.GetByID(ctx, nil, id)
	if err != nil {
		logger.Log.Errorw("failed to get post", "id", id, "error", err)
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.Username != username {
		logger.Log.Infow("delete attempt by non-owner", "id", id, "username", username)
		return ErrNotPostOwner
	}

	if err := s.likeWrite.DeleteByPost(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete likes of post", "id", id, "error", err)
		return err
	}
	if err := s.postWrite.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete post", "id", id, "error", err)
		return err
	}
	if err := s.userCount.RecountPosts(ctx, username); err != nil {
		logger.Log.Errorw("failed to recount posts", "username", username, "error", err)
		return err
	}

	s.publishActivity(ctx, "post_deleted", username, id)

	return nil
}

// Like adds the viewer's like edge to a post. Idempotent: if the edge already
// exists no write happens and the current post state is returned.
func (s *FeedService) Like(ctx context.Context, viewer string, id int64) (*models.PostDB, error) {
	post, err := s.postRead.GetByID(ctx, &viewer, id)
	if err != nil {
		logger.Log.Errorw("failed to get post", "id", id, "error", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	inserted, err := s.likeWrite.SaveIfAbsent(ctx, viewer, id)
	if err != nil {
		logger.Log.Errorw("failed to save like", "id", id, "viewer", viewer, "error", err)
		return nil, err
	}

	if inserted {
		if err := s.likeWrite.RecountLikes(ctx, id); err != nil {
			logger.Log.Errorw("failed to recount likes", "id", id, "error", err)
			return nil, err
		}
		if post, err = s.postRead.GetByID(ctx, &viewer, id); err != nil {
			return nil, err
		}
		s.publishActivity(ctx, "post_liked", viewer, id)
	}

	return post, nil
}

// Unlike removes the viewer's like edge. Always recomputes the count and
// returns the current post state; removing an absent edge is a no-op.
func (s *FeedService) Unlike(ctx context.Context, viewer string, id int64) (*models.PostDB, error) {
	if err := s.likeWrite.Delete(ctx, viewer, id); err != nil {
		logger.Log.Errorw("failed to delete like", "id", id, "viewer", viewer, "error", err)
		return nil, err
	}
	if err := s.likeWrite.RecountLikes(ctx, id); err != nil {
		logger.Log.Errorw("failed to recount likes", "id", id, "error", err)
		return nil, err
	}

	post, err := s.postRead.GetByID(ctx, &viewer, id)
	if err != nil {
		logger.Log.Errorw("failed to get post", "id", id, "error", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	s.publishActivity(ctx, "post_unliked", viewer, id)

	return post, nil
}
