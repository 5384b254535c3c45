package application

import (
	"errors"

	"github.com/sirupsen/logrus"

	repo "github.com/driftcode/minifeed/internal/domain/repository"
	"github.com/driftcode/minifeed/pkg/helpers"
)

type LikeService struct {
	Likes  repo.LikeRepository
	Posts  repo.PostRepository
	Logger *logrus.Logger
}

func NewLikeService(likes repo.LikeRepository, posts repo.PostRepository, logger *logrus.Logger) *LikeService {
	return &LikeService{Likes: likes, Posts: posts, Logger: logger}
}

// Toggle flips the like state for (userID, postID) and returns the resulting
// state and count. Toggling twice always returns the count to where it was.
func (s *LikeService) Toggle(userID, postID string) (liked bool, count int, err error) {
	if _, err = s.Posts.GetByID(postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, 0, ErrPostNotFound
		}
		return false, 0, err
	}

	liked, err = s.Likes.Toggle(userID, postID, helpers.NewID())
	if err != nil {
		return false, 0, err
	}

	count, err = s.Likes.CountByPost(postID)
	if err != nil {
		return liked, 0, err
	}
	s.Logger.WithFields(logrus.Fields{"post_id": postID, "user_id": userID, "liked": liked}).Debug("like toggled")
	return liked, count, nil
}
