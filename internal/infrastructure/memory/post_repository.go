package memory

import (
	"time"

	"github.com/driftcode/minifeed/internal/domain/entity"
	"github.com/driftcode/minifeed/internal/domain/repository"
)

type PostRepository struct {
	db *DB
}

func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(p *entity.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.db.posts[p.ID] = *p
	r.db.postOrder = append(r.db.postOrder, p.ID)
	return nil
}

func (r *PostRepository) GetByID(id string) (*entity.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *PostRepository) Update(p *entity.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.db.posts[p.ID] = *p
	return nil
}

func (r *PostRepository) Delete(id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.db.posts, id)
	for i, pid := range r.db.postOrder {
		if pid == id {
			r.db.postOrder = append(r.db.postOrder[:i], r.db.postOrder[i+1:]...)
			break
		}
	}
	// cascade, as the schema does
	for k, l := range r.db.likes {
		if l.PostID == id {
			delete(r.db.likes, k)
		}
	}
	kept := r.db.comments[:0]
	for _, c := range r.db.comments {
		if c.PostID != id {
			kept = append(kept, c)
		}
	}
	r.db.comments = kept
	return nil
}

func (r *PostRepository) View(id, viewerID string) (*entity.PostView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	v := r.db.view(p, viewerID)
	return &v, nil
}

func (r *PostRepository) ListViews(viewerID string) ([]entity.PostView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	// newest first: reverse insertion order
	views := make([]entity.PostView, 0, len(r.db.postOrder))
	for i := len(r.db.postOrder) - 1; i >= 0; i-- {
		if p, ok := r.db.posts[r.db.postOrder[i]]; ok {
			views = append(views, r.db.view(p, viewerID))
		}
	}
	return views, nil
}

func (r *PostRepository) ViewsByIDs(ids []string, viewerID string) ([]entity.PostView, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	views := make([]entity.PostView, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.db.posts[id]; ok {
			views = append(views, r.db.view(p, viewerID))
		}
	}
	return views, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
