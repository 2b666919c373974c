package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/akarpov87/social-feed/internal/logger"
	"github.com/akarpov87/social-feed/internal/models"
)

// PostReadRepository handles post read operations. Every query annotates rows
// with is_liked relative to the requesting viewer; a nil viewer (anonymous
// request) leaves the flag false.
type PostReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPostReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PostReadRepository {
	return &PostReadRepository{db: db, txGetter: txGetter}
}

func (r *PostReadRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns a single post annotated for the viewer, or nil when absent.
// Runs on the request transaction when one is open, so reads after a mutation
// in the same request observe the mutation.
func (r *PostReadRepository) GetByID(ctx context.Context, viewer *string, id int64) (*models.PostDB, error) {
	const query = `
		SELECT p.id, p.username, p.message, p.likes, p.created_at, p.updated_at,
		       (l.username IS NOT NULL) AS is_liked
		FROM posts p
		LEFT JOIN likes l ON l.post_id = p.id AND l.username = $1
		WHERE p.id = $2
	`

	var post models.PostDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &post, query, viewer, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewer, id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// ListByUsername returns posts authored by owner, oldest first, annotated for
// the viewer. A non-nil before id restricts the page to ids strictly below it.
func (r *PostReadRepository) ListByUsername(ctx context.Context, viewer *string, owner string, before *int64, limit int) ([]models.PostDB, error) {
	const query = `
		SELECT p.id, p.username, p.message, p.likes, p.created_at, p.updated_at,
		       (l.username IS NOT NULL) AS is_liked
		FROM posts p
		LEFT JOIN likes l ON l.post_id = p.id AND l.username = $1
		WHERE p.username = $2
		  AND ($3::BIGINT IS NULL OR p.id < $3)
		ORDER BY p.created_at ASC, p.id ASC
		LIMIT $4
	`

	posts := []models.PostDB{}
	err := r.db.SelectContext(ctx, &posts, query, viewer, owner, before, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewer, owner, before, limit},
		"result", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

// ListTimeline merges posts authored by the viewer and by accounts the viewer
// follows into one feed, newest first by (created_at, id), annotated with the
// viewer's like-state. Same strict id < before cursor semantics as
// ListByUsername.
func (r *PostReadRepository) ListTimeline(ctx context.Context, viewer string, before *int64, limit int) ([]models.PostDB, error) {
	const query = `
		SELECT p.id, p.username, p.message, p.likes, p.created_at, p.updated_at,
		       (l.username IS NOT NULL) AS is_liked
		FROM posts p
		LEFT JOIN likes l ON l.post_id = p.id AND l.username = $1
		WHERE (p.username = $1 OR p.username IN (SELECT following FROM follows WHERE username = $1))
		  AND ($2::BIGINT IS NULL OR p.id < $2)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $3
	`

	posts := []models.PostDB{}
	err := r.db.SelectContext(ctx, &posts, query, viewer, before, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewer, before, limit},
		"result", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

// PostWriteRepository handles post write operations.
type PostWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPostWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PostWriteRepository {
	return &PostWriteRepository{db: db, txGetter: txGetter}
}

func (r *PostWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a post and reads the inserted row back in the same statement.
func (r *PostWriteRepository) Save(ctx context.Context, username, message string) (*models.PostDB, error) {
	query := `
		INSERT INTO posts (username, message, likes, created_at, updated_at)
		VALUES ($1, $2, 0, NOW(), NOW())
		RETURNING id, username, message, likes, created_at, updated_at
	`

	var post models.PostDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &post, query, username, message)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, message},
		"result", post.ID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Delete removes a post row. Like edges referencing the post must be removed
// first, in the same transaction.
func (r *PostWriteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
