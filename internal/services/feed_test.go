package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov87/social-feed/internal/models"
	"github.com/akarpov87/social-feed/internal/services"
)

func newFeedService(ctrl *gomock.Controller) (
	*services.FeedService,
	*services.MockPostReader,
	*services.MockPostWriter,
	*services.MockLikeWriter,
	*services.MockPostCounter,
) {
	postRead := services.NewMockPostReader(ctrl)
	postWrite := services.NewMockPostWriter(ctrl)
	likeWrite := services.NewMockLikeWriter(ctrl)
	userCount := services.NewMockPostCounter(ctrl)
	svc := services.NewFeedService(postRead, postWrite, likeWrite, userCount, nil)
	return svc, postRead, postWrite, likeWrite, userCount
}

func TestFeedService_UserPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, postRead, _, _, _ := newFeedService(ctrl)

	viewer := "jane.doe"
	posts := []models.PostDB{{ID: 1, Username: "john.smith", Message: "hello"}}

	postRead.EXPECT().
		ListByUsername(gomock.Any(), &viewer, "john.smith", (*int64)(nil), 20).
		Return(posts, nil)

	got, err := svc.UserPosts(context.Background(), &viewer, "john.smith", nil)
	assert.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestFeedService_Timeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, postRead, _, _, _ := newFeedService(ctrl)

	before := int64(42)
	posts := []models.PostDB{{ID: 41}, {ID: 40}}

	postRead.EXPECT().
		ListTimeline(gomock.Any(), "jane.doe", &before, 10).
		Return(posts, nil)

	got, err := svc.Timeline(context.Background(), "jane.doe", &before)
	assert.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestFeedService_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		saveErr    error
		recountErr error
		wantErr    bool
	}{
		{name: "success"},
		{name: "save error", saveErr: errors.New("db error"), wantErr: true},
		{name: "recount error", recountErr: errors.New("db error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, postWrite, _, userCount := newFeedService(ctrl)

			saved := &models.PostDB{ID: 7, Username: "jane.doe", Message: "hello"}
			postWrite.EXPECT().
				Save(gomock.Any(), "jane.doe", "hello").
				Return(saved, tt.saveErr)
			if tt.saveErr == nil {
				userCount.EXPECT().
					RecountPosts(gomock.Any(), "jane.doe").
					Return(tt.recountErr)
			}

			post, err := svc.CreatePost(context.Background(), "jane.doe", "hello")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, post)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, saved, post)
			}
		})
	}
}

func TestFeedService_DeletePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		post    *models.PostDB
		getErr  error
		wantErr error
	}{
		{
			name: "success",
			post: &models.PostDB{ID: 7, Username: "jane.doe"},
		},
		{
			name:    "post not found",
			post:    nil,
			wantErr: services.ErrPostNotFound,
		},
		{
			name:    "not the owner",
			post:    &models.PostDB{ID: 7, Username: "john.smith"},
			wantErr: services.ErrNotPostOwner,
		},
		{
			name:    "read error",
			getErr:  errors.New("db error"),
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, postRead, postWrite, likeWrite, userCount := newFeedService(ctrl)

			postRead.EXPECT().
				GetByID(gomock.Any(), (*string)(nil), int64(7)).
				Return(tt.post, tt.getErr)

			if tt.wantErr == nil {
				likeWrite.EXPECT().DeleteByPost(gomock.Any(), int64(7)).Return(nil)
				postWrite.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
				userCount.EXPECT().RecountPosts(gomock.Any(), "jane.doe").Return(nil)
			}

			err := svc.DeletePost(context.Background(), "jane.doe", 7)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFeedService_Like(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewer := "jane.doe"

	t.Run("first like recounts and re-reads", func(t *testing.T) {
		svc, postRead, _, likeWrite, _ := newFeedService(ctrl)

		stale := &models.PostDB{ID: 7, Likes: 0, IsLiked: false}
		fresh := &models.PostDB{ID: 7, Likes: 1, IsLiked: true}

		gomock.InOrder(
			postRead.EXPECT().GetByID(gomock.Any(), &viewer, int64(7)).Return(stale, nil),
			likeWrite.EXPECT().SaveIfAbsent(gomock.Any(), viewer, int64(7)).Return(true, nil),
			likeWrite.EXPECT().RecountLikes(gomock.Any(), int64(7)).Return(nil),
			postRead.EXPECT().GetByID(gomock.Any(), &viewer, int64(7)).Return(fresh, nil),
		)

		post, err := svc.Like(context.Background(), viewer, 7)
		assert.NoError(t, err)
		assert.Equal(t, fresh, post)
	})

	t.Run("repeated like is a no-op", func(t *testing.T) {
		svc, postRead, _, likeWrite, _ := newFeedService(ctrl)

		current := &models.PostDB{ID: 7, Likes: 1, IsLiked: true}

		postRead.EXPECT().GetByID(gomock.Any(), &viewer, int64(7)).Return(current, nil)
		likeWrite.EXPECT().SaveIfAbsent(gomock.Any(), viewer, int64(7)).Return(false, nil)

		post, err := svc.Like(context.Background(), viewer, 7)
		assert.NoError(t, err)
		assert.Equal(t, current, post)
	})

	t.Run("unknown post", func(t *testing.T) {
		svc, postRead, _, _, _ := newFeedService(ctrl)

		postRead.EXPECT().GetByID(gomock.Any(), &viewer, int64(7)).Return(nil, nil)

		post, err := svc.Like(context.Background(), viewer, 7)
		assert.ErrorIs(t, err, services.ErrPostNotFound)
		assert.Nil(t, post)
	})
}

func TestFeedService_Unlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewer := "jane.doe"

	t.Run("unlike recounts and returns current state", func(t *testing.T) {
		svc, postRead, _, likeWrite, _ := newFeedService(ctrl)

		fresh := &models.PostDB{ID: 7, Likes: 0, IsLiked: false}

		gomock.InOrder(
			likeWrite.EXPECT().Delete(gomock.Any(), viewer, int64(7)).Return(nil),
			likeWrite.EXPECT().RecountLikes(gomock.Any(), int64(7)).Return(nil),
			postRead.EXPECT().GetByID(gomock.Any(), &viewer, int64(7)).Return(fresh, nil),
		)

		post, err := svc.Unlike(context.Background(), viewer, 7)
		assert.NoError(t, err)
		assert.Equal(t, fresh, post)
	})

	t.Run("unknown post", func(t *testing.T) {
		svc, postRead, _, likeWrite, _ := newFeedService(ctrl)

		likeWrite.EXPECT().Delete(gomock.Any(), viewer, int64(7)).Return(nil)
		likeWrite.EXPECT().RecountLikes(gomock.Any(), int64(7)).Return(nil)
		postRead.EXPECT().GetByID(gomock.Any(), &viewer, int64(7)).Return(nil, nil)

		post, err := svc.Unlike(context.Background(), viewer, 7)
		assert.ErrorIs(t, err, services.ErrPostNotFound)
		assert.Nil(t, post)
	})
}

func TestFeedService_PublishesActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postRead := services.NewMockPostReader(ctrl)
	postWrite := services.NewMockPostWriter(ctrl)
	likeWrite := services.NewMockLikeWriter(ctrl)
	userCount := services.NewMockPostCounter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	svc := services.NewFeedService(postRead, postWrite, likeWrite, userCount, kafkaWriter)

	saved := &models.PostDB{ID: 7, Username: "jane.doe", Message: "hello"}
	postWrite.EXPECT().Save(gomock.Any(), "jane.doe", "hello").Return(saved, nil)
	userCount.EXPECT().RecountPosts(gomock.Any(), "jane.doe").Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	post, err := svc.CreatePost(context.Background(), "jane.doe", "hello")
	assert.NoError(t, err)
	assert.Equal(t, saved, post)
}

func TestFeedService_PublishFailureDoesNotFailMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	postRead := services.NewMockPostReader(ctrl)
	postWrite := services.NewMockPostWriter(ctrl)
	likeWrite := services.NewMockLikeWriter(ctrl)
	userCount := services.NewMockPostCounter(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	svc := services.NewFeedService(postRead, postWrite, likeWrite, userCount, kafkaWriter)

	saved := &models.PostDB{ID: 7, Username: "jane.doe", Message: "hello"}
	postWrite.EXPECT().Save(gomock.Any(), "jane.doe", "hello").Return(saved, nil)
	userCount.EXPECT().RecountPosts(gomock.Any(), "jane.doe").Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	post, err := svc.CreatePost(context.Background(), "jane.doe", "hello")
	assert.NoError(t, err)
	assert.Equal(t, saved, post)
}
