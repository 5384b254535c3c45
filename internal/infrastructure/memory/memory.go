// Package memory provides in-memory repository implementations with the
// same constraint behavior as the postgres ones (unique email/username,
// unique like per user/post pair). The application and handler tests run
// against these.
package memory

import (
	"sync"
	"time"

	"github.com/driftcode/minifeed/internal/domain/entity"
)

// DB is the shared state behind the per-aggregate repositories.
type DB struct {
	mu sync.Mutex

	users     map[string]entity.User
	byEmail   map[string]string
	byName    map[string]string
	posts     map[string]entity.Post
	postOrder []string
	comments  []entity.Comment
	likes     map[string]entity.Like // keyed by userID + "\x00" + postID
}

func NewDB() *DB {
	return &DB{
		users:   make(map[string]entity.User),
		byEmail: make(map[string]string),
		byName:  make(map[string]string),
		posts:   make(map[string]entity.Post),
		likes:   make(map[string]entity.Like),
	}
}

// AddComment inserts a comment directly; this app has no comment-creation
// route, but views must still aggregate existing rows.
func (db *DB) AddComment(c entity.Comment) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	db.comments = append(db.comments, c)
}

func likeKey(userID, postID string) string {
	return userID + "\x00" + postID
}

func (db *DB) view(p entity.Post, viewerID string) entity.PostView {
	v := entity.PostView{Post: p}
	if u, ok := db.users[p.UserID]; ok {
		v.AuthorName = u.Username
	}
	for _, l := range db.likes {
		if l.PostID == p.ID {
			v.LikeCount++
			if l.UserID == viewerID {
				v.LikedByViewer = true
			}
		}
	}
	for _, c := range db.comments {
		if c.PostID == p.ID {
			v.CommentCount++
		}
	}
	return v
}
