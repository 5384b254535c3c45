package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driftcode/minifeed/internal/session"
	"github.com/driftcode/minifeed/pkg/helpers"
)

const sessionContextKey = "session"

// LoadSession resolves the session cookie into a session.Record and stores
// it in the Gin context. It never rejects; the Require* gates do that.
func LoadSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err == nil && token != "" {
			if rec, err := store.Get(c.Request.Context(), token); err == nil {
				c.Set(sessionContextKey, rec)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the authenticated session, or nil.
func CurrentSession(c *gin.Context) *session.Record {
	if v, ok := c.Get(sessionContextKey); ok {
		if rec, ok := v.(*session.Record); ok {
			return rec
		}
	}
	return nil
}

// RequirePage gates full-page routes: anonymous requests are redirected to
// the login page.
func RequirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireFragment gates fragment routes: instead of a body the client gets
// an HX-Redirect header telling it to navigate to the login page.
func RequireFragment() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.Header("HX-Redirect", "/login")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated sends logged-in users from the login/signup forms
// back to the feed.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) != nil {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
