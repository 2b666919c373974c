package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/akarpov87/social-feed/internal/logger"
)

// LikeWriteRepository handles like-edge write operations.
type LikeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLikeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LikeWriteRepository {
	return &LikeWriteRepository{db: db, txGetter: txGetter}
}

func (r *LikeWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveIfAbsent inserts a like edge unless it already exists. The conditional
// insert guarantees at most one edge per (username, post_id) under concurrent
// duplicate requests. Returns whether a row was actually inserted.
func (r *LikeWriteRepository) SaveIfAbsent(ctx context.Context, username string, postID int64) (bool, error) {
	query := `
		INSERT INTO likes (username, post_id)
		VALUES ($1, $2)
		ON CONFLICT (username, post_id) DO NOTHING
	`
	args := []any{username, postID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// Delete removes a like edge. Removing an absent edge is a no-op.
func (r *LikeWriteRepository) Delete(ctx context.Context, username string, postID int64) error {
	query := `DELETE FROM likes WHERE username = $1 AND post_id = $2`
	args := []any{username, postID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// DeleteByPost removes every like edge referencing a post, ahead of deleting
// the post itself.
func (r *LikeWriteRepository) DeleteByPost(ctx context.Context, postID int64) error {
	query := `DELETE FROM likes WHERE post_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, postID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// RecountLikes recomputes the denormalized like count for a post from the
// likes table.
func (r *LikeWriteRepository) RecountLikes(ctx context.Context, postID int64) error {
	query := `
		UPDATE posts
		SET likes = (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id),
		    updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, postID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"error", err,
	)

	return err
}
