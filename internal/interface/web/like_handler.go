package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/driftcode/minifeed/internal/application"
)

type LikeHandler struct {
	Svc    *application.LikeService
	Logger *logrus.Logger
}

func NewLikeHandler(svc *application.LikeService, logger *logrus.Logger) *LikeHandler {
	return &LikeHandler{Svc: svc, Logger: logger}
}

// Toggle likes or un-likes the post for the current user and returns the
// refreshed like-button fragment.
func (h *LikeHandler) Toggle(c *gin.Context) {
	sess := currentSession(c)
	postID := c.Param("id")

	liked, count, err := h.Svc.Toggle(sess.UserID, postID)
	if err != nil {
		if errors.Is(err, application.ErrPostNotFound) {
			c.String(http.StatusNotFound, "post not found")
			return
		}
		h.Logger.WithError(err).WithField("post_id", postID).Error("like toggle failed")
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "like_button", likeControl{PostID: postID, Count: count, Liked: liked})
}
