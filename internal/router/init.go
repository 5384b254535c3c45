package router

import (
	"github.com/driftcode/minifeed/internal/application"
	"github.com/driftcode/minifeed/internal/container"
	pginfra "github.com/driftcode/minifeed/internal/infrastructure/postgres"
	"github.com/driftcode/minifeed/internal/interface/web"
	"github.com/driftcode/minifeed/internal/router/modules"
	"github.com/driftcode/minifeed/pkg/helpers"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	likes := pginfra.NewLikeRepository(pool)

	authSvc := application.NewAuthService(users, container.GetSessions(), logger)
	postSvc := application.NewPostService(posts, comments, logger, container.GetES(), cfg.ESPostsIndex)
	likeSvc := application.NewLikeService(likes, posts, logger)

	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewAuthModule(web.NewAuthHandler(authSvc, logger, cookies, container.GetUIDTokens())))
	r.Add(modules.NewPostModule(web.NewPostHandler(postSvc, logger)))
	r.Add(modules.NewLikeModule(web.NewLikeHandler(likeSvc, logger)))
}
