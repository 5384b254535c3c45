package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/driftcode/minifeed/internal/domain/entity"
	"github.com/driftcode/minifeed/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) ListByPost(postID string) ([]entity.CommentView, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.post_id, c.user_id, c.body, c.created_at, u.username
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []entity.CommentView{}
	for rows.Next() {
		var cv entity.CommentView
		if err := rows.Scan(&cv.ID, &cv.PostID, &cv.UserID, &cv.Body, &cv.CreatedAt, &cv.AuthorName); err != nil {
			return nil, err
		}
		comments = append(comments, cv)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) CountByPost(postID string) (int, error) {
	ctx := context.Background()
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).Scan(&n)
	return n, err
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
