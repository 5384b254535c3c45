package entity

import "time"

type Comment struct {
	ID        string
	PostID    string
	UserID    string
	Body      string
	CreatedAt time.Time
}

// CommentView carries the author name alongside the comment for rendering.
type CommentView struct {
	Comment
	AuthorName string
}
