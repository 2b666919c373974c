package validation

import (
	"context"

	"github.com/akarpov87/social-feed/internal/logger"
)

// LineLister reads the permitted-lines allow-list from the database.
type LineLister interface {
	List(ctx context.Context) ([]string, error)
}

// LineCacher caches the allow-list between requests.
type LineCacher interface {
	List(ctx context.Context) ([]string, error)
	Set(ctx context.Context, lines []string) error
}

// UsernameLister reads the set of registered usernames.
type UsernameLister interface {
	ListUsernames(ctx context.Context) ([]string, error)
}

// MessageProvider constrains the message field of a new post to the controlled
// vocabulary of permitted lines, read through the cache when one is configured.
type MessageProvider struct {
	lines LineLister
	cache LineCacher
}

// NewMessageProvider creates a provider; cache may be nil.
func NewMessageProvider(lines LineLister, cache LineCacher) *MessageProvider {
	return &MessageProvider{lines: lines, cache: cache}
}

// Constraints builds the message rule set from the current allow-list.
func (p *MessageProvider) Constraints(ctx context.Context) (RuleSet, error) {
	var allowed []string
	var err error

	if p.cache != nil {
		allowed, err = p.cache.List(ctx)
	}
	if p.cache == nil || err != nil {
		allowed, err = p.lines.List(ctx)
		if err != nil {
			return nil, err
		}
		if p.cache != nil {
			if cacheErr := p.cache.Set(ctx, allowed); cacheErr != nil {
				logger.Log.Errorw("failed to cache permitted lines", "error", cacheErr)
			}
		}
	}

	return RuleSet{
		"message": {Presence: true, Inclusion: allowed},
	}, nil
}

// FollowProvider constrains the follow field to an existing username.
type FollowProvider struct {
	users UsernameLister
}

func NewFollowProvider(users UsernameLister) *FollowProvider {
	return &FollowProvider{users: users}
}

// Constraints builds the follow rule set from the current user table.
func (p *FollowProvider) Constraints(ctx context.Context) (RuleSet, error) {
	usernames, err := p.users.ListUsernames(ctx)
	if err != nil {
		return nil, err
	}

	return RuleSet{
		"follow": {Presence: true, Inclusion: usernames},
	}, nil
}
