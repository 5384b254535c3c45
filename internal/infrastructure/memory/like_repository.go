package memory

import (
	"time"

	"github.com/driftcode/minifeed/internal/domain/entity"
	"github.com/driftcode/minifeed/internal/domain/repository"
)

type LikeRepository struct {
	db *DB
}

func NewLikeRepository(db *DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Toggle(userID, postID, newID string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	key := likeKey(userID, postID)
	if _, ok := r.db.likes[key]; ok {
		delete(r.db.likes, key)
		return false, nil
	}
	r.db.likes[key] = entity.Like{ID: newID, UserID: userID, PostID: postID, CreatedAt: time.Now().UTC()}
	return true, nil
}

func (r *LikeRepository) CountByPost(postID string) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	n := 0
	for _, l := range r.db.likes {
		if l.PostID == postID {
			n++
		}
	}
	return n, nil
}

func (r *LikeRepository) GetByUserAndPost(userID, postID string) (*entity.Like, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	l, ok := r.db.likes[likeKey(userID, postID)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &l, nil
}

var _ repository.LikeRepository = (*LikeRepository)(nil)
