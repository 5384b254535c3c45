package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/driftcode/minifeed/internal/domain/entity"
	repo "github.com/driftcode/minifeed/internal/domain/repository"
	"github.com/driftcode/minifeed/pkg/helpers"
)

var (
	ErrPostNotFound = errors.New("post not found")
	// ErrNotOwner is returned for any mutation attempted by a user who does
	// not own the post. Update and edit are gated the same way delete is.
	ErrNotOwner = errors.New("not the owner of this post")
)

type PostService struct {
	Posts    repo.PostRepository
	Comments repo.CommentRepository
	Logger   *logrus.Logger

	// ES is optional; when nil, indexing is skipped and search returns
	// nothing.
	ES           *elasticsearch.Client
	ESPostsIndex string
}

func NewPostService(posts repo.PostRepository, comments repo.CommentRepository, logger *logrus.Logger, es *elasticsearch.Client, esPostsIndex string) *PostService {
	return &PostService{Posts: posts, Comments: comments, Logger: logger, ES: es, ESPostsIndex: esPostsIndex}
}

// Create persists a new post for the owner and returns its rendered view.
func (s *PostService) Create(ctx context.Context, ownerID, title, content string) (*entity.PostView, error) {
	p := &entity.Post{
		ID:      helpers.NewID(),
		UserID:  ownerID,
		Title:   title,
		Content: content,
	}
	if err := s.Posts.Create(p); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"post_id": p.ID, "user_id": ownerID}).Info("post created")

	_ = s.indexPost(ctx, p)

	return s.view(p.ID, ownerID)
}

// Get returns the canonical view of a post together with its comments.
func (s *PostService) Get(id, viewerID string) (*entity.PostView, []entity.CommentView, error) {
	v, err := s.view(id, viewerID)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.Comments.ListByPost(id)
	if err != nil {
		return nil, nil, err
	}
	return v, comments, nil
}

// Feed returns every post, newest first.
func (s *PostService) Feed(viewerID string) ([]entity.PostView, error) {
	return s.Posts.ListViews(viewerID)
}

// GetForEdit loads a post for its owner's edit form.
func (s *PostService) GetForEdit(id, requesterID string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(id)
	if err != nil {
		return nil, ErrPostNotFound
	}
	if p.UserID != requesterID {
		return nil, ErrNotOwner
	}
	return p, nil
}

// Update overwrites title and content, owner only.
func (s *PostService) Update(ctx context.Context, id, requesterID, title, content string) (*entity.PostView, error) {
	p, err := s.Posts.GetByID(id)
	if err != nil {
		return nil, ErrPostNotFound
	}
	if p.UserID != requesterID {
		return nil, ErrNotOwner
	}

	p.Title = title
	p.Content = content
	if err := s.Posts.Update(p); err != nil {
		return nil, err
	}
	s.Logger.WithField("post_id", id).Info("post updated")

	_ = s.indexPost(ctx, p)

	return s.view(id, requesterID)
}

// Delete removes a post, owner only.
func (s *PostService) Delete(ctx context.Context, id, requesterID string) error {
	p, err := s.Posts.GetByID(id)
	if err != nil {
		return ErrPostNotFound
	}
	if p.UserID != requesterID {
		return ErrNotOwner
	}
	if err := s.Posts.Delete(id); err != nil {
		return err
	}
	s.Logger.WithField("post_id", id).Info("post deleted")

	s.deleteFromIndex(ctx, id)
	return nil
}

func (s *PostService) view(id, viewerID string) (*entity.PostView, error) {
	v, err := s.Posts.View(id, viewerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *PostService) indexPost(ctx context.Context, p *entity.Post) error {
	if s.ES == nil || s.ESPostsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         p.ID,
		"user_id":    p.UserID,
		"title":      p.Title,
		"content":    p.Content,
		"created_at": p.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
	return nil
}

func (s *PostService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPostsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("post_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}

// Search queries the posts index and loads the matching views from the
// database. An unconfigured index yields an empty result set.
func (s *PostService) Search(ctx context.Context, q, viewerID string) ([]entity.PostView, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []entity.PostView{}, nil
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "content"},
			},
		},
		"size": 25,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESPostsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return s.Posts.ViewsByIDs(ids, viewerID)
}
