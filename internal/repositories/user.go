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

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT username, first_name, last_name, password_hash, posts, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ListRanked returns users ordered by post count descending, then username
// ascending. A non-nil before username resumes the ranking strictly after that
// user's position.
func (r *UserReadRepository) ListRanked(ctx context.Context, before *string, limit int) ([]models.UserDB, error) {
	const query = `
		SELECT username, first_name, last_name, password_hash, posts, created_at, updated_at
		FROM users
		WHERE $1::VARCHAR IS NULL
		   OR posts < (SELECT posts FROM users WHERE username = $1)
		   OR (posts = (SELECT posts FROM users WHERE username = $1) AND username > $1)
		ORDER BY posts DESC, username ASC
		LIMIT $2
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query, before, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{before, limit},
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// ListUsernames returns every registered username, used to build the dynamic
// follow-target allow-list.
func (r *UserReadRepository) ListUsernames(ctx context.Context) ([]string, error) {
	const query = `SELECT username FROM users ORDER BY username ASC`

	usernames := []string{}
	err := r.db.SelectContext(ctx, &usernames, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(usernames),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return usernames, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user with a zero post count.
func (r *UserWriteRepository) Save(ctx context.Context, username, firstName, lastName, passwordHash string) error {
	query := `
		INSERT INTO users (username, first_name, last_name, password_hash, posts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, NOW(), NOW())
	`
	args := []any{username, firstName, lastName, passwordHash}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, firstName, lastName},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// RecountPosts recomputes the denormalized post count for a user from the
// posts table. The count is never incremented in place.
func (r *UserWriteRepository) RecountPosts(ctx context.Context, username string) error {
	query := `
		UPDATE users
		SET posts = (SELECT COUNT(*) FROM posts WHERE posts.username = users.username),
		    updated_at = NOW()
		WHERE username = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	return err
}
