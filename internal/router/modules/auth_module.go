package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/driftcode/minifeed/internal/container"
	"github.com/driftcode/minifeed/internal/interface/middleware"
	"github.com/driftcode/minifeed/internal/interface/web"
)

// AuthModule wires the signup/login/logout surface.
// Public: GET+POST /login, GET+POST /signup
// GET /logout destroys whatever session the cookie names, no gate needed.
type AuthModule struct {
	Handler *web.AuthHandler
}

func NewAuthModule(h *web.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get a per-IP limiter; the forms do not.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	signupLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())

	guest := rg.Group("/")
	guest.Use(middleware.RedirectIfAuthenticated())
	{
		guest.GET("/login", m.Handler.ShowLogin)
		guest.GET("/signup", m.Handler.ShowSignup)
		guest.POST("/login", loginLimiter, m.Handler.Login)
		guest.POST("/signup", signupLimiter, m.Handler.Signup)
	}

	rg.GET("/logout", m.Handler.Logout)
}
