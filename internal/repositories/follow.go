package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/models"
)

// FollowReadRepository handles follow-edge read operations.
type FollowReadRepository struct {
	db *sqlx.DB
}

func NewFollowReadRepository(db *sqlx.DB) *FollowReadRepository {
	return &FollowReadRepository{db: db}
}

// ListByUsername returns the follow edges originating from a user.
func (r *FollowReadRepository) ListByUsername(ctx context.Context, username string) ([]models.FollowDB, error) {
	const query = `
		SELECT username, following
		FROM follows
		WHERE username = $1
		ORDER BY following ASC
	`

	follows := []models.FollowDB{}
	err := r.db.SelectContext(ctx, &follows, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", len(follows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return follows, nil
}

// FollowWriteRepository handles follow-edge write operations.
type FollowWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFollowWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FollowWriteRepository {
	return &FollowWriteRepository{db: db, txGetter: txGetter}
}

func (r *FollowWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveIfAbsent inserts a follow edge unless it already exists, guaranteeing at
// most one edge per (follower, followee) pair under concurrent duplicates.
func (r *FollowWriteRepository) SaveIfAbsent(ctx context.Context, username, following string) (bool, error) {
	query := `
		INSERT INTO follows (username, following)
		VALUES ($1, $2)
		ON CONFLICT (username, following) DO NOTHING
	`
	args := []any{username, following}

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

// Delete removes a follow edge unconditionally; absent edges are a no-op.
func (r *FollowWriteRepository) Delete(ctx context.Context, username, following string) error {
	query := `DELETE FROM follows WHERE username = $1 AND following = $2`
	args := []any{username, following}

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
