package web

import (
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/driftcode/minifeed/internal/application"
	"github.com/driftcode/minifeed/internal/infrastructure/memory"
	"github.com/driftcode/minifeed/internal/interface/middleware"
	"github.com/driftcode/minifeed/internal/session"
	"github.com/driftcode/minifeed/pkg/helpers"
	"github.com/driftcode/minifeed/pkg/validation"
)

// newTestServer wires the handlers against in-memory storage, mirroring the
// route table the router modules register.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db := memory.NewDB()
	sessions := session.NewMemoryStore(time.Hour)
	cookies := helpers.NewCookie("", false)
	uidTokens := helpers.NewUIDTokenManager("test-secret", 15*time.Minute)

	authSvc := application.NewAuthService(memory.NewUserRepository(db), sessions, logger)
	postSvc := application.NewPostService(memory.NewPostRepository(db), memory.NewCommentRepository(db), logger, nil, "")
	likeSvc := application.NewLikeService(memory.NewLikeRepository(db), memory.NewPostRepository(db), logger)

	auth := NewAuthHandler(authSvc, logger, cookies, uidTokens)
	posts := NewPostHandler(postSvc, logger)
	likes := NewLikeHandler(likeSvc, logger)

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.ParseGlob("../../../web/templates/*.html")))
	r.Use(middleware.LoadSession(sessions))

	guest := r.Group("/", middleware.RedirectIfAuthenticated())
	guest.GET("/login", auth.ShowLogin)
	guest.POST("/login", auth.Login)
	guest.GET("/signup", auth.ShowSignup)
	guest.POST("/signup", auth.Signup)
	r.GET("/logout", auth.Logout)

	pages := r.Group("/", middleware.RequirePage())
	pages.GET("/", posts.Feed)
	pages.GET("/search", posts.Search)

	fragments := r.Group("/posts", middleware.RequireFragment())
	fragments.POST("", posts.Create)
	fragments.GET("/:id", posts.Show)
	fragments.GET("/:id/edit", posts.EditForm)
	fragments.PUT("/:id", posts.Update)
	fragments.DELETE("/:id", posts.Delete)

	r.POST("/likes/:id", middleware.RequireFragment(), likes.Toggle)

	return r
}

// doForm submits an urlencoded form with the given session cookies attached.
func doForm(r *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	return doForm(r, http.MethodGet, path, nil, cookies)
}

// signup registers a fresh account and returns its cookies.
func signup(t *testing.T, r *gin.Engine, username, email string) []*http.Cookie {
	t.Helper()
	w := doForm(r, http.MethodPost, "/signup", url.Values{
		"username":        {username},
		"email":           {email},
		"password":        {"password123"},
		"repeat-password": {"password123"},
	}, nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("signup status = %d, body: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("signup set no cookies")
	}
	return cookies
}

// createPost posts a new entry and returns its id parsed from the fragment.
func createPost(t *testing.T, r *gin.Engine, cookies []*http.Cookie, title, content string) string {
	t.Helper()
	w := doForm(r, http.MethodPost, "/posts", url.Values{"title": {title}, "content": {content}}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("create post status = %d, body: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	const marker = `id="post-`
	i := strings.Index(body, marker)
	if i < 0 {
		t.Fatalf("no post id in fragment: %s", body)
	}
	rest := body[i+len(marker):]
	return rest[:strings.Index(rest, `"`)]
}

func TestSignupLoginFlow(t *testing.T) {
	r := newTestServer(t)

	cookies := signup(t, r, "alice", "alice@example.com")

	// session cookie grants access to the feed
	w := doGet(r, "/", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("feed with session = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "alice") {
		t.Fatal("feed page does not greet the user")
	}

	// a fresh login works with the same credentials
	w = doForm(r, http.MethodPost, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"password123"},
	}, nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, want 303", w.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestServer(t)
	signup(t, r, "alice", "alice@example.com")

	for _, form := range []url.Values{
		{"email": {"alice@example.com"}, "password": {"wrongpass"}},
		{"email": {"nobody@example.com"}, "password": {"password123"}},
	} {
		w := doForm(r, http.MethodPost, "/login", form, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("failed login status = %d, want 200 re-render", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid email / password combination") {
			t.Fatalf("missing failure message, body: %s", w.Body.String())
		}
	}
}

func TestSignupRejectsMismatchedPasswords(t *testing.T) {
	r := newTestServer(t)

	w := doForm(r, http.MethodPost, "/signup", url.Values{
		"username":        {"alice"},
		"email":           {"alice@example.com"},
		"password":        {"password123"},
		"repeat-password": {"different1"},
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 re-render", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Both password fields must match") {
		t.Fatalf("missing mismatch message, body: %s", w.Body.String())
	}
}

func TestAnonymousAccess(t *testing.T) {
	r := newTestServer(t)

	// pages redirect to login
	w := doGet(r, "/", nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("anonymous feed = %d %q, want 303 /login", w.Code, w.Header().Get("Location"))
	}

	// fragments get an HX-Redirect instead
	w = doForm(r, http.MethodPost, "/posts", url.Values{"title": {"x"}, "content": {"y"}}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous fragment = %d, want 401", w.Code)
	}
	if w.Header().Get("HX-Redirect") != "/login" {
		t.Fatal("missing HX-Redirect header on anonymous fragment request")
	}
}

func TestCreatePostFragment(t *testing.T) {
	r := newTestServer(t)
	cookies := signup(t, r, "alice", "alice@example.com")

	w := doForm(r, http.MethodPost, "/posts", url.Values{"title": {"Hi"}, "content": {"World"}}, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"Hi", "World", "alice", `<span class="like-count">0</span>`} {
		if !strings.Contains(body, want) {
			t.Fatalf("fragment missing %q: %s", want, body)
		}
	}

	// the new post shows up on the feed page
	w = doGet(r, "/", cookies)
	if !strings.Contains(w.Body.String(), "Hi") {
		t.Fatal("feed does not include the new post")
	}
}

func TestCreatePostValidation(t *testing.T) {
	r := newTestServer(t)
	cookies := signup(t, r, "alice", "alice@example.com")

	w := doForm(r, http.MethodPost, "/posts", url.Values{"title": {"Hi"}}, cookies)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "content is required") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestLikeToggleFragment(t *testing.T) {
	r := newTestServer(t)
	cookies := signup(t, r, "alice", "alice@example.com")
	id := createPost(t, r, cookies, "Hi", "World")

	w := doForm(r, http.MethodPost, "/likes/"+id, nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `<span class="like-count">1</span>`) {
		t.Fatalf("first toggle body: %s", w.Body.String())
	}

	w = doForm(r, http.MethodPost, "/likes/"+id, nil, cookies)
	if !strings.Contains(w.Body.String(), `<span class="like-count">0</span>`) {
		t.Fatalf("second toggle body: %s", w.Body.String())
	}

	w = doForm(r, http.MethodPost, "/likes/missing", nil, cookies)
	if w.Code != http.StatusNotFound {
		t.Fatalf("toggle on missing post = %d, want 404", w.Code)
	}
}

func TestUpdateAndDeleteOwnership(t *testing.T) {
	r := newTestServer(t)
	alice := signup(t, r, "alice", "alice@example.com")
	bob := signup(t, r, "bob", "bob@example.com")
	id := createPost(t, r, alice, "Hi", "World")

	// bob may not edit or delete alice's post
	w := doForm(r, http.MethodPut, "/posts/"+id, url.Values{"title": {"Hacked"}, "content": {"Hacked"}}, bob)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "You can not edit this post") {
		t.Fatalf("non-owner update = %d %q", w.Code, w.Body.String())
	}
	w = doGet(r, "/posts/"+id+"/edit", bob)
	if !strings.Contains(w.Body.String(), "You can not edit this post") {
		t.Fatalf("non-owner edit form = %q", w.Body.String())
	}
	w = doForm(r, http.MethodDelete, "/posts/"+id, nil, bob)
	if !strings.Contains(w.Body.String(), "You can not delete this post") {
		t.Fatalf("non-owner delete = %q", w.Body.String())
	}

	// alice can
	w = doForm(r, http.MethodPut, "/posts/"+id, url.Values{"title": {"Hello"}, "content": {"Again"}}, alice)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Hello") {
		t.Fatalf("owner update = %d %q", w.Code, w.Body.String())
	}
	w = doForm(r, http.MethodDelete, "/posts/"+id, nil, alice)
	if w.Code != http.StatusOK || w.Body.Len() != 0 {
		t.Fatalf("owner delete = %d %q, want empty 200", w.Code, w.Body.String())
	}

	w = doGet(r, "/posts/"+id, alice)
	if w.Code != http.StatusNotFound {
		t.Fatalf("show after delete = %d, want 404", w.Code)
	}
}

func TestEditFormPrefilled(t *testing.T) {
	r := newTestServer(t)
	alice := signup(t, r, "alice", "alice@example.com")
	id := createPost(t, r, alice, "Hi", "World")

	w := doGet(r, "/posts/"+id+"/edit", alice)
	if w.Code != http.StatusOK {
		t.Fatalf("edit form status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Hi", "World", "/posts/" + id} {
		if !strings.Contains(body, want) {
			t.Fatalf("edit form missing %q: %s", want, body)
		}
	}
}

func TestLogoutClearsAccess(t *testing.T) {
	r := newTestServer(t)
	cookies := signup(t, r, "alice", "alice@example.com")

	w := doGet(r, "/logout", cookies)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("logout = %d %q", w.Code, w.Header().Get("Location"))
	}

	// the old session token no longer works
	w = doGet(r, "/", cookies)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("feed after logout = %d, want 303 to login", w.Code)
	}
}

func TestRedirectIfAuthenticated(t *testing.T) {
	r := newTestServer(t)
	cookies := signup(t, r, "alice", "alice@example.com")

	w := doGet(r, "/login", cookies)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("login page while authenticated = %d %q, want 303 /", w.Code, w.Header().Get("Location"))
	}
}
