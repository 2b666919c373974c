package models

// ActivityEvent represents an activity record published to Kafka after a feed
// mutation, e.g. "post_created", "post_deleted", "post_liked", "post_unliked".
type ActivityEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the mutation.
	Operation string `json:"operation"` // Operation describes the mutation type.
	Username  string `json:"username"`  // Username is the actor of the mutation.
	PostID    int64  `json:"post_id"`   // PostID is the affected post, when applicable.
}
