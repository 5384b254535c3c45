package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/driftcode/minifeed/internal/interface/middleware"
	"github.com/driftcode/minifeed/internal/interface/web"
)

// PostModule wires the feed page and the post fragment endpoints.
// Everything here requires a session: the page endpoints redirect anonymous
// requests to /login, the fragment endpoints answer with HX-Redirect.
type PostModule struct {
	Handler *web.PostHandler
}

func NewPostModule(h *web.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	pages := rg.Group("/")
	pages.Use(middleware.RequirePage())
	{
		pages.GET("/", m.Handler.Feed)
		pages.GET("/search", m.Handler.Search)
	}

	fragments := rg.Group("/posts")
	fragments.Use(middleware.RequireFragment())
	{
		fragments.POST("", m.Handler.Create)
		fragments.GET("/:id", m.Handler.Show)
		fragments.GET("/:id/edit", m.Handler.EditForm)
		fragments.PUT("/:id", m.Handler.Update)
		fragments.DELETE("/:id", m.Handler.Delete)
	}
}
