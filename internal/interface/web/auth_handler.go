package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/driftcode/minifeed/internal/application"
	"github.com/driftcode/minifeed/internal/interface/middleware"
	"github.com/driftcode/minifeed/internal/session"
	"github.com/driftcode/minifeed/pkg/helpers"
	"github.com/driftcode/minifeed/pkg/validation"
)

// The login failure message is identical for unknown emails and wrong
// passwords so responses cannot be used to enumerate accounts.
const msgInvalidCombination = "Invalid email / password combination"

type AuthHandler struct {
	Svc       *application.AuthService
	Logger    *logrus.Logger
	Cookies   *helpers.CookieManager
	UIDTokens *helpers.UIDTokenManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookies *helpers.CookieManager, uidTokens *helpers.UIDTokenManager) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: cookies, UIDTokens: uidTokens}
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type signupForm struct {
	Username string `form:"username" binding:"required,min=3,max=20"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,pwd"`
	Repeat   string `form:"repeat-password" binding:"required"`
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{})
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login", gin.H{"Message": "Please fill out all required fields"})
		return
	}

	rec, err := h.Svc.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		c.HTML(http.StatusOK, "login", gin.H{"Message": msgInvalidCombination})
		return
	}

	h.establish(c, rec)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "signup", gin.H{"Message": validation.ToMessage(err)})
		return
	}

	rec, err := h.Svc.Signup(c.Request.Context(), form.Username, form.Email, form.Password, form.Repeat)
	if err != nil {
		c.HTML(http.StatusOK, "signup", gin.H{"Message": signupMessage(err)})
		return
	}

	h.establish(c, rec)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(helpers.SessionCookieName); err == nil && token != "" {
		if err := h.Svc.Logout(c.Request.Context(), token); err != nil {
			h.Logger.WithError(err).Warn("session destroy failed")
		}
	}
	h.Cookies.Clear(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) establish(c *gin.Context, rec *session.Record) {
	h.Cookies.SetSession(c, rec.Token, time.Now().Add(h.Svc.Sessions.TTL()))
	uidToken, exp, err := h.UIDTokens.Generate(rec.UserID)
	if err != nil {
		// the uid cookie is auxiliary; a session alone is fine
		h.Logger.WithError(err).Warn("uid token generation failed")
		return
	}
	h.Cookies.SetUID(c, uidToken, exp)
}

func signupMessage(err error) string {
	switch {
	case errors.Is(err, application.ErrPasswordMismatch):
		return "Both password fields must match"
	case errors.Is(err, application.ErrEmailTaken):
		return "Email is already registered"
	case errors.Is(err, application.ErrUsernameTaken):
		return "Username is already taken"
	}
	return "Could not create the account, please try again"
}

// currentSession is a shorthand used by all handlers in this package.
func currentSession(c *gin.Context) *session.Record {
	return middleware.CurrentSession(c)
}
