package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driftcode/minifeed/internal/domain/entity"
)

// Redirect navigates the browser. Fragment requests carry an HX-Request
// header and get the target via HX-Redirect instead of a 3xx, which the
// page script turns into a full navigation.
func Redirect(c *gin.Context, location string) {
	if c.GetHeader("HX-Request") != "" {
		c.Header("HX-Redirect", location)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

// postCard is the rendering context of the post fragment. Comments may be
// nil; the feed renders cards without them.
type postCard struct {
	Post     entity.PostView
	Comments []entity.CommentView
}

// Like adapts a card to the like-button fragment context so the button in a
// card and the fragment returned by the toggle endpoint render identically.
func (pc postCard) Like() likeControl {
	return likeControl{PostID: pc.Post.ID, Count: pc.Post.LikeCount, Liked: pc.Post.LikedByViewer}
}

type likeControl struct {
	PostID string
	Count  int
	Liked  bool
}

func cardsFrom(views []entity.PostView) []postCard {
	cards := make([]postCard, 0, len(views))
	for _, v := range views {
		cards = append(cards, postCard{Post: v})
	}
	return cards
}
