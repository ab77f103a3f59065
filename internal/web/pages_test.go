package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	authDelivery "tweetmood/internal/auth/delivery"
	authUsecase "tweetmood/internal/auth/usecase"
	reviewdto "tweetmood/internal/review/dto"
	reviewRepo "tweetmood/internal/review/repository"
	reviewUsecase "tweetmood/internal/review/usecase"
	sentimentUsecase "tweetmood/internal/sentiment/usecase"
	"tweetmood/internal/web"
	"tweetmood/pkg/config"
	"tweetmood/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	engine  *gin.Engine
	reviews reviewUsecase.ReviewUsecase
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "reviews.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	repo := reviewRepo.NewGormReviewRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))
	reviewUc := reviewUsecase.NewReviewUsecase(repo)

	authenticator, err := authUsecase.NewStaticAuthenticator("admin@gmail.com", "admin@##123")
	require.NoError(t, err)
	authUc := authUsecase.NewAuthUsecase(authenticator, &config.Config{SessionSecret: "test-secret", SessionTTL: time.Hour})

	pages := web.NewPages(sentimentUsecase.NewSentimentUsecase(), reviewUc, authUc, "help@example.com", false)

	engine := gin.New()
	engine.Use(authDelivery.SessionMiddleware(authUc))
	require.NoError(t, pages.Register(engine))

	return &testApp{engine: engine, reviews: reviewUc}
}

// browser keeps the session cookie between requests like a real visitor.
type browser struct {
	app    *testApp
	cookie *http.Cookie
}

func (a *testApp) browser() *browser {
	return &browser{app: a}
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form)
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}

	rec := httptest.NewRecorder()
	b.app.engine.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == authDelivery.SessionCookie {
			b.cookie = c
		}
	}
	return rec
}

func (b *browser) loginAsAdmin(t *testing.T) {
	t.Helper()
	b.post("/reviews/show", nil)
	b.post("/reviews/admin", nil)
	rec := b.post("/admin/login", url.Values{"admin_email": {"admin@gmail.com"}, "admin_password": {"admin@##123"}})
	require.Contains(t, rec.Body.String(), "Admin Logged In Successfully!")
}

func TestMenuRoutes(t *testing.T) {
	b := newTestApp(t).browser()

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "TweetMood Analyzer"},
		{path: "/about", want: "About This Application"},
		{path: "/reviews", want: "User Reviews"},
		{path: "/contact", want: "Get In Touch With Us!"},
	}

	for _, tt := range tests {
		rec := b.get(tt.path)
		require.Equal(t, http.StatusOK, rec.Code, tt.path)
		body := rec.Body.String()
		assert.Contains(t, body, tt.want, tt.path)
		assert.Contains(t, body, `href="`+tt.path+`" class="active"`, tt.path)
		assert.Equal(t, 1, strings.Count(body, `class="active"`), tt.path)
	}
}

func TestRouteCoversEveryMenuItem(t *testing.T) {
	pages := web.NewPages(nil, nil, nil, "", false)
	for _, item := range web.Menu {
		assert.NotNil(t, pages.Route(item), item.Title())
		assert.NotEmpty(t, item.Path())
	}
}

func TestAboutRendersMarkdown(t *testing.T) {
	rec := newTestApp(t).browser().get("/about")

	body := rec.Body.String()
	assert.Contains(t, body, "<strong>Positive, Negative, or Neutral</strong>")
	assert.Contains(t, body, "<h3>")
}

func TestContactForm(t *testing.T) {
	rec := newTestApp(t).browser().get("/contact")

	body := rec.Body.String()
	assert.Contains(t, body, `action="https://formsubmit.co/help@example.com"`)
	for _, field := range []string{`name="name"`, `name="email"`, `name="message"`, `name="_captcha"`} {
		assert.Contains(t, body, field)
	}
}

func TestAnalyze(t *testing.T) {
	b := newTestApp(t).browser()

	tests := []struct {
		text  string
		label string
		color string
	}{
		{text: "I love this!", label: "Positive", color: "#00ff00"},
		{text: "I hate this!", label: "Negative", color: "#ff4d4d"},
		{text: "It is a pen.", label: "Neutral", color: "#f4d03f"},
	}

	for _, tt := range tests {
		rec := b.post("/analyze", url.Values{"text": {tt.text}})
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Sentiment: <b>"+tt.label+"</b>", tt.text)
		assert.Contains(t, body, tt.color, tt.text)
	}
}

func TestAnalyzeEmptyWarns(t *testing.T) {
	rec := newTestApp(t).browser().post("/analyze", url.Values{"text": {""}})

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please enter a tweet to analyze.")
	assert.NotContains(t, body, "Sentiment: <b>")
}

func TestSubmitReview(t *testing.T) {
	app := newTestApp(t)
	b := app.browser()

	rec := b.post("/reviews", url.Values{"name": {"Alice"}, "email": {"alice@gmail.com"}, "review": {"Great tool"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your review has been submitted successfully!")

	public, err := app.reviews.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Alice", public[0].Name)
}

func TestSubmitReviewErrors(t *testing.T) {
	app := newTestApp(t)
	b := app.browser()

	rec := b.post("/reviews", url.Values{"name": {"Bob"}, "email": {"bob@yahoo.com"}, "review": {"Nice"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "please enter a valid email address ending with @gmail.com")
	assert.Contains(t, body, `value="bob@yahoo.com"`)

	rec = b.post("/reviews", url.Values{"name": {""}, "email": {"bob@gmail.com"}, "review": {"Nice"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "please fill out all fields")

	full, err := app.reviews.ListFull(context.Background())
	require.NoError(t, err)
	assert.Empty(t, full)
}

func TestRevealFlow(t *testing.T) {
	app := newTestApp(t)
	_, err := app.reviews.Submit(context.Background(), reviewdto.SubmitReviewRequest{Name: "Alice", Email: "alice@gmail.com", Review: "Great tool"})
	require.NoError(t, err)

	b := app.browser()
	body := b.get("/reviews").Body.String()
	assert.NotContains(t, body, "All User Reviews")
	assert.NotContains(t, body, "Admin Login")

	rec := b.post("/reviews/show", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/reviews", rec.Header().Get("Location"))

	body = b.get("/reviews").Body.String()
	assert.Contains(t, body, "All User Reviews")
	assert.Contains(t, body, "Alice:</b> Great tool")
	assert.NotContains(t, body, "alice@gmail.com")
	assert.NotContains(t, body, "Admin Login")

	b.post("/reviews/admin", nil)
	body = b.get("/reviews").Body.String()
	assert.Contains(t, body, "Admin Login")
	assert.NotContains(t, body, "Manage Reviews")

	// Reveals survive navigation to other pages.
	b.get("/contact")
	body = b.get("/reviews").Body.String()
	assert.Contains(t, body, "All User Reviews")
	assert.Contains(t, body, "Admin Login")
}

func TestEmptyFeed(t *testing.T) {
	b := newTestApp(t).browser()
	b.post("/reviews/show", nil)

	assert.Contains(t, b.get("/reviews").Body.String(), "No reviews found.")
}

func TestAdminPanelRequiresPrompt(t *testing.T) {
	b := newTestApp(t).browser()

	b.post("/reviews/admin", nil)
	assert.NotContains(t, b.get("/reviews").Body.String(), "Admin Login")

	rec := b.post("/admin/login", url.Values{"admin_email": {"admin@gmail.com"}, "admin_password": {"admin@##123"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.NotContains(t, b.get("/reviews").Body.String(), "Manage Reviews")
}

func TestAdminLoginDenied(t *testing.T) {
	b := newTestApp(t).browser()
	b.post("/reviews/show", nil)
	b.post("/reviews/admin", nil)

	rec := b.post("/admin/login", url.Values{"admin_email": {"x@gmail.com"}, "admin_password": {"wrong"}})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "Manage Reviews")
	assert.NotContains(t, body, "Admin Logged In")
	assert.NotContains(t, body, `class="error"`)
	assert.Contains(t, body, "Admin Login")
}

func TestAdminManageAndDelete(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	kept, err := app.reviews.Submit(ctx, reviewdto.SubmitReviewRequest{Name: "Alice", Email: "alice@gmail.com", Review: "Great tool"})
	require.NoError(t, err)
	gone, err := app.reviews.Submit(ctx, reviewdto.SubmitReviewRequest{Name: "Spam", Email: "spam@gmail.com", Review: "buy now"})
	require.NoError(t, err)

	b := app.browser()
	b.loginAsAdmin(t)

	body := b.get("/reviews").Body.String()
	assert.Contains(t, body, "Manage Reviews")
	assert.Contains(t, body, "spam@gmail.com")
	assert.Contains(t, body, "Delete Review "+strconv.Itoa(int(gone.ID)))

	rec := b.post("/admin/reviews/delete", url.Values{"ids": {strconv.Itoa(int(gone.ID))}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/reviews?deleted=1", rec.Header().Get("Location"))

	body = b.get(rec.Header().Get("Location")).Body.String()
	assert.Contains(t, body, "Selected review(s) deleted!")
	assert.NotContains(t, body, "spam@gmail.com")

	// Unknown ids are ignored.
	rec = b.post("/admin/reviews/delete", url.Values{"ids": {"999999"}})
	assert.Equal(t, "/reviews?deleted=0", rec.Header().Get("Location"))
	body = b.get(rec.Header().Get("Location")).Body.String()
	assert.NotContains(t, body, "Selected review(s) deleted!")

	full, err := app.reviews.ListFull(ctx)
	require.NoError(t, err)
	require.Len(t, full, 1)
	assert.Equal(t, kept.ID, full[0].ID)

	// Logging out hides the management view but keeps the feed.
	b.post("/admin/logout", nil)
	body = b.get("/reviews").Body.String()
	assert.NotContains(t, body, "Manage Reviews")
	assert.Contains(t, body, "All User Reviews")
}

func TestDeletedFlashNeedsRemovedRows(t *testing.T) {
	b := newTestApp(t).browser()

	for _, path := range []string{"/reviews?deleted=0", "/reviews?deleted=-1", "/reviews?deleted=abc"} {
		assert.NotContains(t, b.get(path).Body.String(), "Selected review(s) deleted!", path)
	}
	assert.Contains(t, b.get("/reviews?deleted=2").Body.String(), "Selected review(s) deleted!")
}

func TestLogoutEndsEarlierAdminCookie(t *testing.T) {
	app := newTestApp(t)
	_, err := app.reviews.Submit(context.Background(), reviewdto.SubmitReviewRequest{Name: "Alice", Email: "alice@gmail.com", Review: "Great tool"})
	require.NoError(t, err)

	b := app.browser()
	b.loginAsAdmin(t)
	adminCookie := b.cookie

	rec := b.post("/admin/logout", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.NotContains(t, b.get("/reviews").Body.String(), "Manage Reviews")

	replay := &browser{app: app, cookie: adminCookie}
	rec = replay.get("/reviews")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Manage Reviews")
	assert.NotContains(t, rec.Body.String(), "alice@gmail.com")

	rec = replay.post("/admin/reviews/delete", url.Values{"ids": {"1"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	review, err := app.reviews.Submit(context.Background(), reviewdto.SubmitReviewRequest{Name: "Alice", Email: "alice@gmail.com", Review: "Great tool"})
	require.NoError(t, err)

	b := app.browser()
	b.post("/reviews/show", nil)
	b.post("/reviews/admin", nil)
	b.post("/admin/login", url.Values{"admin_email": {"x@gmail.com"}, "admin_password": {"wrong"}})

	rec := b.post("/admin/reviews/delete", url.Values{"ids": {strconv.Itoa(int(review.ID))}})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	full, err := app.reviews.ListFull(context.Background())
	require.NoError(t, err)
	assert.Len(t, full, 1)
}

func TestDeleteRejectsBadIDs(t *testing.T) {
	b := newTestApp(t).browser()
	b.loginAsAdmin(t)

	rec := b.post("/admin/reviews/delete", url.Values{"ids": {"abc"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewsAreEscaped(t *testing.T) {
	app := newTestApp(t)
	_, err := app.reviews.Submit(context.Background(), reviewdto.SubmitReviewRequest{Name: "Mallory", Email: "m@gmail.com", Review: "<script>alert(1)</script>"})
	require.NoError(t, err)

	b := app.browser()
	b.post("/reviews/show", nil)
	body := b.get("/reviews").Body.String()
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
