package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/driftcode/minifeed/internal/interface/middleware"
	"github.com/driftcode/minifeed/internal/interface/web"
)

// LikeModule wires the like-toggle fragment endpoint.
type LikeModule struct {
	Handler *web.LikeHandler
}

func NewLikeModule(h *web.LikeHandler) *LikeModule {
	return &LikeModule{Handler: h}
}

func (m *LikeModule) Register(rg *gin.RouterGroup) {
	likes := rg.Group("/likes")
	likes.Use(middleware.RequireFragment())
	{
		likes.POST("/:id", m.Handler.Toggle)
	}
}
