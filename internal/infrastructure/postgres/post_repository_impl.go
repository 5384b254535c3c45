package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/driftcode/minifeed/internal/domain/entity"
	"github.com/driftcode/minifeed/internal/domain/repository"
)

// viewSelect joins a post with its author and aggregate counts. $1 is the
// viewer id and only drives the liked flag; it may be empty.
const viewSelect = `
	SELECT p.id, p.user_id, p.title, p.content, p.created_at,
	       u.username,
	       COALESCE((SELECT COUNT(*) FROM likes WHERE post_id = p.id), 0) AS like_count,
	       COALESCE((SELECT COUNT(*) FROM comments WHERE post_id = p.id), 0) AS comment_count,
	       EXISTS(SELECT 1 FROM likes WHERE post_id = p.id AND user_id = $1) AS liked_by_viewer
	FROM posts p
	JOIN users u ON p.user_id = u.id`

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(p *entity.Post) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (id, user_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, p.ID, p.UserID, p.Title, p.Content)

	return row.Scan(&p.CreatedAt)
}

func (r *PostRepository) GetByID(id string) (*entity.Post, error) {
	ctx := context.Background()
	p := &entity.Post{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, content, created_at
		FROM posts
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PostRepository) Update(p *entity.Post) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2
		WHERE id = $3
	`, p.Title, p.Content, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) View(id, viewerID string) (*entity.PostView, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, viewSelect+` WHERE p.id = $2`, viewerID, id)

	v := &entity.PostView{}
	if err := scanView(row, v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *PostRepository) ListViews(viewerID string) ([]entity.PostView, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, viewSelect+` ORDER BY p.created_at DESC`, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectViews(rows)
}

func (r *PostRepository) ViewsByIDs(ids []string, viewerID string) ([]entity.PostView, error) {
	if len(ids) == 0 {
		return []entity.PostView{}, nil
	}
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, viewSelect+` WHERE p.id = ANY($2)`, viewerID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views, err := collectViews(rows)
	if err != nil {
		return nil, err
	}

	// Preserve the caller's ordering (search relevance).
	byID := make(map[string]entity.PostView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}
	ordered := make([]entity.PostView, 0, len(views))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}

func scanView(row pgx.Row, v *entity.PostView) error {
	return row.Scan(&v.ID, &v.UserID, &v.Title, &v.Content, &v.CreatedAt,
		&v.AuthorName, &v.LikeCount, &v.CommentCount, &v.LikedByViewer)
}

func collectViews(rows pgx.Rows) ([]entity.PostView, error) {
	views := []entity.PostView{}
	for rows.Next() {
		var v entity.PostView
		if err := scanView(rows, &v); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

var _ repository.PostRepository = (*PostRepository)(nil)
