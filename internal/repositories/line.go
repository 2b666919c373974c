package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/akarpov87/social-feed/internal/logger"
)

// LineReadRepository reads the controlled vocabulary of permitted post lines.
type LineReadRepository struct {
	db *sqlx.DB
}

func NewLineReadRepository(db *sqlx.DB) *LineReadRepository {
	return &LineReadRepository{db: db}
}

// List returns every permitted line.
func (r *LineReadRepository) List(ctx context.Context) ([]string, error) {
	const query = `SELECT line FROM lines ORDER BY id ASC`

	lines := []string{}
	err := r.db.SelectContext(ctx, &lines, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(lines),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return lines, nil
}

const lineCacheKey = "permitted_lines"

// LineCacheRepository caches the permitted-lines allow-list in Redis with a TTL.
type LineCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached allow-list
}

// NewLineCacheRepository creates a new cache repository with the given TTL.
func NewLineCacheRepository(client *redis.Client, expiration time.Duration) *LineCacheRepository {
	return &LineCacheRepository{client: client, exp: expiration}
}

// List returns the cached allow-list, or redis.Nil-wrapped error on a miss.
func (r *LineCacheRepository) List(ctx context.Context) ([]string, error) {
	val, err := r.client.Get(ctx, lineCacheKey).Result()

	logger.Log.Infow(
		"key", lineCacheKey,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	var lines []string
	if err := json.Unmarshal([]byte(val), &lines); err != nil {
		return nil, err
	}

	return lines, nil
}

// Set stores the allow-list with the configured expiration.
func (r *LineCacheRepository) Set(ctx context.Context, lines []string) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, lineCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", lineCacheKey,
		"result", len(lines),
		"error", err,
	)

	return err
}
