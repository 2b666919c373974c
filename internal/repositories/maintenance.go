package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/akarpov87/social-feed/internal/logger"
)

// MaintenanceRepository repairs denormalized aggregates from their
// source-of-truth tables. Both statements are idempotent.
type MaintenanceRepository struct {
	db *sqlx.DB
}

func NewMaintenanceRepository(db *sqlx.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// RecountAllPosts rewrites every user's post count from the posts table.
func (r *MaintenanceRepository) RecountAllPosts(ctx context.Context) error {
	query := `
		UPDATE users
		SET posts = (SELECT COUNT(*) FROM posts WHERE posts.username = users.username)
		WHERE posts <> (SELECT COUNT(*) FROM posts WHERE posts.username = users.username)
	`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// RecountAllLikes rewrites every post's like count from the likes table.
func (r *MaintenanceRepository) RecountAllLikes(ctx context.Context) error {
	query := `
		UPDATE posts
		SET likes = (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id)
		WHERE likes <> (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id)
	`

	res, err := r.db.ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", rowsAffected,
		"error", err,
	)

	return err
}
