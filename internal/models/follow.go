package models

// FollowDB represents a follow edge. The pair is unique per
// (follower, followee); A following B does not imply B following A.
type FollowDB struct {
	Username  string `json:"username" db:"username"`   // Follower
	Following string `json:"following" db:"following"` // Followee
}
