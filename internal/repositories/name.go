package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/akarpov87/social-feed/internal/logger"
)

// NameReadRepository draws random word pairs used to mint credentials at
// registration time.
type NameReadRepository struct {
	db *sqlx.DB
}

func NewNameReadRepository(db *sqlx.DB) *NameReadRepository {
	return &NameReadRepository{db: db}
}

// RandomFreeName returns a random (first name, last name) pair not already
// used by an existing user.
func (r *NameReadRepository) RandomFreeName(ctx context.Context) (string, string, error) {
	const query = `
		SELECT f.first_name, l.last_name
		FROM first_names f
		CROSS JOIN last_names l
		LEFT JOIN users u ON u.first_name = f.first_name AND u.last_name = l.last_name
		WHERE u.username IS NULL
		ORDER BY random()
		LIMIT 1
	`

	var pair struct {
		FirstName string `db:"first_name"`
		LastName  string `db:"last_name"`
	}
	err := r.db.GetContext(ctx, &pair, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", pair,
		"error", err,
	)

	if err != nil {
		return "", "", err
	}

	return pair.FirstName, pair.LastName, nil
}

// RandomPassphrase returns a random (adjective, noun) pair used to compose a
// generated password.
func (r *NameReadRepository) RandomPassphrase(ctx context.Context) (string, string, error) {
	const query = `
		SELECT a.adjective, n.noun
		FROM adjectives a
		CROSS JOIN nouns n
		ORDER BY random()
		LIMIT 1
	`

	var pair struct {
		Adjective string `db:"adjective"`
		Noun      string `db:"noun"`
	}
	err := r.db.GetContext(ctx, &pair, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return "", "", err
	}

	return pair.Adjective, pair.Noun, nil
}
