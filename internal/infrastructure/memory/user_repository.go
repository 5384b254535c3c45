package memory

import (
	"time"

	"github.com/driftcode/minifeed/internal/domain/entity"
	"github.com/driftcode/minifeed/internal/domain/repository"
)

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.byEmail[u.Email]; ok {
		return repository.ErrEmailTaken
	}
	if _, ok := r.db.byName[u.Username]; ok {
		return repository.ErrUsernameTaken
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.db.users[u.ID] = *u
	r.db.byEmail[u.Email] = u.ID
	r.db.byName[u.Username] = u.ID
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	id, ok := r.db.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.db.users[id]
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
