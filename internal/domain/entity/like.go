package entity

import "time"

// Like relates a user to a post. The (UserID, PostID) pair is unique,
// enforced by a database constraint.
type Like struct {
	ID        string
	UserID    string
	PostID    string
	CreatedAt time.Time
}
