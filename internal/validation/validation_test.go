package validation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/akarpov87/social-feed/internal/validation"
)

func TestValidate(t *testing.T) {
	rules := validation.RuleSet{
		"message": {Presence: true, Inclusion: []string{"hello world", "good morning"}},
	}

	tests := []struct {
		name string
		body map[string]any
		want validation.Errors
	}{
		{
			name: "permitted value",
			body: map[string]any{"message": "hello world"},
			want: nil,
		},
		{
			name: "value outside the list",
			body: map[string]any{"message": "something else"},
			want: validation.Errors{"message": {"message is not included in the list"}},
		},
		{
			name: "missing field",
			body: map[string]any{},
			want: validation.Errors{"message": {"message can't be blank"}},
		},
		{
			name: "blank field",
			body: map[string]any{"message": ""},
			want: validation.Errors{"message": {"message can't be blank"}},
		},
		{
			name: "null field",
			body: map[string]any{"message": nil},
			want: validation.Errors{"message": {"message can't be blank"}},
		},
		{
			name: "non-string value",
			body: map[string]any{"message": 42.0},
			want: validation.Errors{"message": {"message is not included in the list"}},
		},
		{
			name: "unknown fields are ignored",
			body: map[string]any{"message": "hello world", "extra": "whatever"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.Validate(tt.body, rules)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_PresenceOnly(t *testing.T) {
	rules := validation.RuleSet{"follow": {Presence: true}}

	assert.Nil(t, validation.Validate(map[string]any{"follow": "john.smith"}, rules))
	assert.Equal(t,
		validation.Errors{"follow": {"follow can't be blank"}},
		validation.Validate(map[string]any{}, rules))
}

func TestMessageProvider_Constraints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lines := []string{"hello world", "good morning"}

	t.Run("cache hit skips the database", func(t *testing.T) {
		mockLines := validation.NewMockLineLister(ctrl)
		mockCache := validation.NewMockLineCacher(ctrl)

		mockCache.EXPECT().List(gomock.Any()).Return(lines, nil)

		p := validation.NewMessageProvider(mockLines, mockCache)
		rules, err := p.Constraints(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, lines, rules["message"].Inclusion)
		assert.True(t, rules["message"].Presence)
	})

	t.Run("cache miss reads through and populates", func(t *testing.T) {
		mockLines := validation.NewMockLineLister(ctrl)
		mockCache := validation.NewMockLineCacher(ctrl)

		mockCache.EXPECT().List(gomock.Any()).Return(nil, errors.New("cache miss"))
		mockLines.EXPECT().List(gomock.Any()).Return(lines, nil)
		mockCache.EXPECT().Set(gomock.Any(), lines).Return(nil)

		p := validation.NewMessageProvider(mockLines, mockCache)
		rules, err := p.Constraints(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, lines, rules["message"].Inclusion)
	})

	t.Run("cache write failure is non-fatal", func(t *testing.T) {
		mockLines := validation.NewMockLineLister(ctrl)
		mockCache := validation.NewMockLineCacher(ctrl)

		mockCache.EXPECT().List(gomock.Any()).Return(nil, errors.New("cache miss"))
		mockLines.EXPECT().List(gomock.Any()).Return(lines, nil)
		mockCache.EXPECT().Set(gomock.Any(), lines).Return(errors.New("cache down"))

		p := validation.NewMessageProvider(mockLines, mockCache)
		rules, err := p.Constraints(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, lines, rules["message"].Inclusion)
	})

	t.Run("no cache configured", func(t *testing.T) {
		mockLines := validation.NewMockLineLister(ctrl)

		mockLines.EXPECT().List(gomock.Any()).Return(lines, nil)

		p := validation.NewMessageProvider(mockLines, nil)
		rules, err := p.Constraints(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, lines, rules["message"].Inclusion)
	})

	t.Run("database error surfaces", func(t *testing.T) {
		mockLines := validation.NewMockLineLister(ctrl)

		mockLines.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		p := validation.NewMessageProvider(mockLines, nil)
		rules, err := p.Constraints(context.Background())
		assert.Error(t, err)
		assert.Nil(t, rules)
	})
}

func TestFollowProvider_Constraints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := validation.NewMockUsernameLister(ctrl)
	mockUsers.EXPECT().
		ListUsernames(gomock.Any()).
		Return([]string{"jane.doe", "john.smith"}, nil)

	p := validation.NewFollowProvider(mockUsers)
	rules, err := p.Constraints(context.Background())
	assert.NoError(t, err)
	assert.True(t, rules["follow"].Presence)
	assert.Equal(t, []string{"jane.doe", "john.smith"}, rules["follow"].Inclusion)
}
