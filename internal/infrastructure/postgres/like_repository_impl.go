package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/driftcode/minifeed/internal/domain/entity"
	"github.com/driftcode/minifeed/internal/domain/repository"
)

type LikeRepository struct {
	pool *pgxpool.Pool
}

func NewLikeRepository(pool *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{pool: pool}
}

// Toggle flips the like state with two constraint-backed statements instead
// of a read-then-write sequence. Concurrent toggles for the same pair cannot
// produce duplicate rows: the UNIQUE(user_id, post_id) constraint absorbs
// the race and ON CONFLICT DO NOTHING keeps the loser quiet.
func (r *LikeRepository) Toggle(userID, postID, newID string) (bool, error) {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `
		DELETE FROM likes WHERE user_id = $1 AND post_id = $2
	`, userID, postID)
	if err != nil {
		return false, err
	}
	if res.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO likes (id, user_id, post_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`, newID, userID, postID)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) CountByPost(postID string) (int, error) {
	ctx := context.Background()
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM likes WHERE post_id = $1`, postID).Scan(&n)
	return n, err
}

func (r *LikeRepository) GetByUserAndPost(userID, postID string) (*entity.Like, error) {
	ctx := context.Background()
	l := &entity.Like{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, post_id, created_at
		FROM likes
		WHERE user_id = $1 AND post_id = $2
	`, userID, postID)

	if err := row.Scan(&l.ID, &l.UserID, &l.PostID, &l.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return l, nil
}

var _ repository.LikeRepository = (*LikeRepository)(nil)
