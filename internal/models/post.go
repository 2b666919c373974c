package models

import "time"

// PostDB represents a post record, optionally annotated with the like-state of
// the requesting viewer. IsLiked is personal to the viewer, not a property of
// the post itself.
type PostDB struct {
	ID        int64     `json:"id" db:"id"`             // Monotonic, server-assigned
	Username  string    `json:"username" db:"username"` // Owner
	Message   string    `json:"message" db:"message"`
	Likes     int       `json:"likes" db:"likes"` // Denormalized like count
	IsLiked   bool      `json:"is_liked" db:"is_liked"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
