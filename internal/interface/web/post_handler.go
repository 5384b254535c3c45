package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/driftcode/minifeed/internal/application"
	"github.com/driftcode/minifeed/pkg/validation"
)

const (
	msgCannotEdit   = "You can not edit this post"
	msgCannotDelete = "You can not delete this post"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type postForm struct {
	Title   string `form:"title" binding:"required,max=120"`
	Content string `form:"content" binding:"required,max=2000"`
}

// Feed renders the home page, newest posts first.
func (h *PostHandler) Feed(c *gin.Context) {
	sess := currentSession(c)
	views, err := h.Svc.Feed(sess.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "index", gin.H{"User": sess, "Cards": cardsFrom(views)})
}

// Search renders the feed page filtered to posts matching the query.
func (h *PostHandler) Search(c *gin.Context) {
	sess := currentSession(c)
	q := c.Query("q")
	views, err := h.Svc.Search(c.Request.Context(), q, sess.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "index", gin.H{"User": sess, "Cards": cardsFrom(views), "Query": q})
}

// Create persists a new post and returns its card fragment for insertion at
// the top of the feed.
func (h *PostHandler) Create(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, validation.ToMessage(err))
		return
	}

	sess := currentSession(c)
	view, err := h.Svc.Create(c.Request.Context(), sess.UserID, form.Title, form.Content)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_card", postCard{Post: *view})
}

// Show returns the canonical card fragment for one post, comments included.
func (h *PostHandler) Show(c *gin.Context) {
	sess := currentSession(c)
	view, comments, err := h.Svc.Get(c.Param("id"), sess.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_card", postCard{Post: *view, Comments: comments})
}

// EditForm returns the inline edit form pre-filled with the current values.
func (h *PostHandler) EditForm(c *gin.Context) {
	sess := currentSession(c)
	p, err := h.Svc.GetForEdit(c.Param("id"), sess.UserID)
	if err != nil {
		if errors.Is(err, application.ErrNotOwner) {
			c.String(http.StatusOK, msgCannotEdit)
			return
		}
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_edit", gin.H{"Post": p})
}

// Update overwrites title/content and returns the refreshed card fragment.
func (h *PostHandler) Update(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, validation.ToMessage(err))
		return
	}

	sess := currentSession(c)
	view, err := h.Svc.Update(c.Request.Context(), c.Param("id"), sess.UserID, form.Title, form.Content)
	if err != nil {
		if errors.Is(err, application.ErrNotOwner) {
			c.String(http.StatusOK, msgCannotEdit)
			return
		}
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_card", postCard{Post: *view})
}

// Delete removes an owned post. The empty 200 body tells the client to drop
// the card from the page; a non-owner gets the rejection text instead.
func (h *PostHandler) Delete(c *gin.Context) {
	sess := currentSession(c)
	err := h.Svc.Delete(c.Request.Context(), c.Param("id"), sess.UserID)
	if err != nil {
		if errors.Is(err, application.ErrNotOwner) {
			c.String(http.StatusOK, msgCannotDelete)
			return
		}
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, "")
}

func (h *PostHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, application.ErrPostNotFound) {
		c.String(http.StatusNotFound, "post not found")
		return
	}
	h.Logger.WithError(err).WithField("path", c.FullPath()).Error("post handler failed")
	c.String(http.StatusInternalServerError, "something went wrong")
}
