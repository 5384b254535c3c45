package entity

import "time"

type Post struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
}

// PostView is the denormalized read model used to render a post card:
// the post joined with its author and aggregate counts.
type PostView struct {
	Post
	AuthorName    string
	LikeCount     int
	CommentCount  int
	LikedByViewer bool
}
