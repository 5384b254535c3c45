package repository

import "github.com/driftcode/minifeed/internal/domain/entity"

// PostRepository defines the interface for post persistence and the
// denormalized views used for rendering.
type PostRepository interface {
	Create(p *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	Update(p *entity.Post) error
	Delete(id string) error

	// View returns a single post joined with author and counts. viewerID may
	// be empty; it only affects the LikedByViewer flag.
	View(id, viewerID string) (*entity.PostView, error)
	// ListViews returns all posts newest-first.
	ListViews(viewerID string) ([]entity.PostView, error)
	// ViewsByIDs returns views for the given ids, preserving input order.
	ViewsByIDs(ids []string, viewerID string) ([]entity.PostView, error)
}
