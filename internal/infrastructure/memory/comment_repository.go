package memory

import (
	"github.com/driftcode/minifeed/internal/domain/entity"
	"github.com/driftcode/minifeed/internal/domain/repository"
)

type CommentRepository struct {
	db *DB
}

func NewCommentRepository(db *DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListByPost(postID string) ([]entity.CommentView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := []entity.CommentView{}
	for _, c := range r.db.comments {
		if c.PostID != postID {
			continue
		}
		cv := entity.CommentView{Comment: c}
		if u, ok := r.db.users[c.UserID]; ok {
			cv.AuthorName = u.Username
		}
		out = append(out, cv)
	}
	return out, nil
}

func (r *CommentRepository) CountByPost(postID string) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	n := 0
	for _, c := range r.db.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n, nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
