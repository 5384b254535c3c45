package repository

import "github.com/driftcode/minifeed/internal/domain/entity"

// LikeRepository defines like persistence. Toggle must be safe against
// concurrent calls for the same (user, post) pair.
type LikeRepository interface {
	// Toggle removes the like if present, otherwise inserts one with the
	// given fresh id. It reports whether the post ends up liked.
	Toggle(userID, postID, newID string) (liked bool, err error)
	CountByPost(postID string) (int, error)
	GetByUserAndPost(userID, postID string) (*entity.Like, error)
}
