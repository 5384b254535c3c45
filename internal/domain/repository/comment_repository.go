package repository

import "github.com/driftcode/minifeed/internal/domain/entity"

// CommentRepository is read-only here: comments are created elsewhere and
// only surface in a post's aggregate view.
type CommentRepository interface {
	ListByPost(postID string) ([]entity.CommentView, error)
	CountByPost(postID string) (int, error)
}
