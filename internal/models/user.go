package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	Username     string    `json:"username" db:"username"`     // Primary key, derived from first/last name
	FirstName    string    `json:"first_name" db:"first_name"` // Immutable after registration
	LastName     string    `json:"last_name" db:"last_name"`   // Immutable after registration
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	Posts        int       `json:"posts" db:"posts"`           // Denormalized post count
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
