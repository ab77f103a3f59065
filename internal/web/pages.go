package web

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	authDelivery "tweetmood/internal/auth/delivery"
	authdomain "tweetmood/internal/auth/domain"
	authUsecase "tweetmood/internal/auth/usecase"
	reviewdomain "tweetmood/internal/review/domain"
	reviewdto "tweetmood/internal/review/dto"
	reviewUsecase "tweetmood/internal/review/usecase"
	sentimentdomain "tweetmood/internal/sentiment/domain"
	sentimentUsecase "tweetmood/internal/sentiment/usecase"

	"github.com/gin-gonic/gin"
)

const (
	msgEmptyTweet     = "Please enter a tweet to analyze."
	msgSubmitted      = "Your review has been submitted successfully!"
	msgAdminLoggedIn  = "Admin Logged In Successfully!"
	msgReviewsDeleted = "Selected review(s) deleted!"
	msgNoReviews      = "No reviews found."
)

// Pages renders the HTML front end. Every handler reads the visitor session
// installed by authDelivery.SessionMiddleware.
type Pages struct {
	sentimentUsecase sentimentUsecase.SentimentUsecase
	reviewUsecase    reviewUsecase.ReviewUsecase
	authUsecase      authUsecase.AuthUsecase
	contactAddress   string
	secureCookies    bool
	aboutHTML        template.HTML
}

func NewPages(sentimentUc sentimentUsecase.SentimentUsecase, reviewUc reviewUsecase.ReviewUsecase, authUc authUsecase.AuthUsecase, contactAddress string, secureCookies bool) *Pages {
	return &Pages{
		sentimentUsecase: sentimentUc,
		reviewUsecase:    reviewUc,
		authUsecase:      authUc,
		contactAddress:   contactAddress,
		secureCookies:    secureCookies,
		aboutHTML:        renderMarkdown(aboutMarkdown),
	}
}

type pageData struct {
	Title string
	Menu  []menuEntry

	// Home
	Text     string
	Analysis *sentimentdomain.Analysis
	Warning  string

	// Reviews
	Session       *authdomain.Session
	Error         string
	Success       string
	Form          reviewdto.SubmitReviewRequest
	PublicReviews []reviewdomain.PublicReview
	AdminReviews  []reviewdomain.Review
	NoReviews     string

	// About
	AboutHTML template.HTML

	// Contact
	ContactAction string
}

// Register installs the templates, one GET route per menu entry and the form endpoints.
func (p *Pages) Register(r *gin.Engine) error {
	tmpl, err := ParseTemplates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	for _, item := range Menu {
		r.GET(item.Path(), p.Route(item))
	}

	r.POST("/analyze", p.Analyze)
	r.POST("/reviews", p.SubmitReview)
	r.POST("/reviews/show", p.ShowReviews)
	r.POST("/reviews/admin", p.OpenAdminLogin)
	r.POST("/admin/login", p.AdminLogin)
	r.POST("/admin/logout", p.AdminLogout)
	r.POST("/admin/reviews/delete", p.DeleteReviews)
	return nil
}

// Route returns the handler that renders exactly the page for item.
func (p *Pages) Route(item MenuItem) gin.HandlerFunc {
	switch item {
	case MenuHome:
		return p.Home
	case MenuAbout:
		return p.About
	case MenuReviews:
		return p.Reviews
	case MenuContact:
		return p.Contact
	}
	return func(c *gin.Context) {
		p.renderError(c, http.StatusNotFound, "Page not found.")
	}
}

func (p *Pages) newPage(item MenuItem) pageData {
	return pageData{
		Title: item.Title(),
		Menu:  menuEntries(item),
	}
}

// Home
// GET /
func (p *Pages) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", p.newPage(MenuHome))
}

// Analyze classifies the tweet typed on the home page
// POST /analyze
func (p *Pages) Analyze(c *gin.Context) {
	data := p.newPage(MenuHome)
	data.Text = c.PostForm("text")

	if data.Text == "" {
		data.Warning = msgEmptyTweet
		c.HTML(http.StatusOK, "home.html", data)
		return
	}

	analysis := p.sentimentUsecase.Analyze(data.Text)
	data.Analysis = &analysis
	c.HTML(http.StatusOK, "home.html", data)
}

// About
// GET /about
func (p *Pages) About(c *gin.Context) {
	data := p.newPage(MenuAbout)
	data.AboutHTML = p.aboutHTML
	c.HTML(http.StatusOK, "about.html", data)
}

// Contact
// GET /contact
func (p *Pages) Contact(c *gin.Context) {
	data := p.newPage(MenuContact)
	data.ContactAction = "https://formsubmit.co/" + p.contactAddress
	c.HTML(http.StatusOK, "contact.html", data)
}

// Reviews
// GET /reviews
func (p *Pages) Reviews(c *gin.Context) {
	data := p.newPage(MenuReviews)
	if n, err := strconv.Atoi(c.Query("deleted")); err == nil && n > 0 {
		data.Success = msgReviewsDeleted
	}
	p.renderReviews(c, http.StatusOK, data)
}

// SubmitReview stores a review from the submission form
// POST /reviews
func (p *Pages) SubmitReview(c *gin.Context) {
	data := p.newPage(MenuReviews)
	if err := c.ShouldBind(&data.Form); err != nil {
		data.Error = reviewdomain.ErrMissingFields.Error()
		p.renderReviews(c, http.StatusBadRequest, data)
		return
	}

	if _, err := p.reviewUsecase.Submit(c.Request.Context(), data.Form); err != nil {
		if reviewdomain.IsValidationError(err) {
			data.Error = err.Error()
			p.renderReviews(c, http.StatusUnprocessableEntity, data)
			return
		}
		p.fail(c, "submit review", err)
		return
	}

	data.Form = reviewdto.SubmitReviewRequest{}
	data.Success = msgSubmitted
	p.renderReviews(c, http.StatusOK, data)
}

// ShowReviews reveals the public review feed
// POST /reviews/show
func (p *Pages) ShowReviews(c *gin.Context) {
	p.transition(c, authdomain.EventShowReviews)
}

// OpenAdminLogin reveals the admin login form
// POST /reviews/admin
func (p *Pages) OpenAdminLogin(c *gin.Context) {
	p.transition(c, authdomain.EventOpenAdminLogin)
}

// AdminLogout drops admin rights for this session
// POST /admin/logout
func (p *Pages) AdminLogout(c *gin.Context) {
	session := authDelivery.CurrentSession(c)
	if err := p.authUsecase.Logout(session); err == nil {
		if !p.saveSession(c, session) {
			return
		}
	}
	c.Redirect(http.StatusSeeOther, MenuReviews.Path())
}

// AdminLogin checks the admin credentials. A mismatch is silent.
// POST /admin/login
func (p *Pages) AdminLogin(c *gin.Context) {
	session := authDelivery.CurrentSession(c)
	err := p.authUsecase.Login(session, c.PostForm("admin_email"), c.PostForm("admin_password"))
	if errors.Is(err, authdomain.ErrInvalidTransition) {
		c.Redirect(http.StatusSeeOther, MenuReviews.Path())
		return
	}

	if !p.saveSession(c, session) {
		return
	}

	data := p.newPage(MenuReviews)
	if err == nil {
		data.Success = msgAdminLoggedIn
	}
	p.renderReviews(c, http.StatusOK, data)
}

// DeleteReviews removes the selected reviews and refreshes the page
// POST /admin/reviews/delete
func (p *Pages) DeleteReviews(c *gin.Context) {
	session := authDelivery.CurrentSession(c)
	if !session.IsAdmin() {
		p.renderError(c, http.StatusForbidden, "Admin login required.")
		return
	}

	raw := c.PostFormArray("ids")
	ids := make([]uint, 0, len(raw))
	for _, v := range raw {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			p.renderError(c, http.StatusBadRequest, "Invalid review id.")
			return
		}
		ids = append(ids, uint(id))
	}

	deleted, err := p.reviewUsecase.Delete(c.Request.Context(), ids)
	if err != nil {
		p.fail(c, "delete reviews", err)
		return
	}

	c.Redirect(http.StatusSeeOther, MenuReviews.Path()+"?deleted="+strconv.FormatInt(deleted, 10))
}

// transition applies a reveal event and redirects back to the reviews page.
// Events that are not valid from the current state are ignored.
func (p *Pages) transition(c *gin.Context, event authdomain.Event) {
	session := authDelivery.CurrentSession(c)
	if err := session.Apply(event); err == nil {
		if !p.saveSession(c, session) {
			return
		}
	}
	c.Redirect(http.StatusSeeOther, MenuReviews.Path())
}

func (p *Pages) renderReviews(c *gin.Context, status int, data pageData) {
	ctx := c.Request.Context()
	session := authDelivery.CurrentSession(c)
	data.Session = session

	if session.ReviewsVisible() {
		reviews, err := p.reviewUsecase.ListPublic(ctx)
		if err != nil {
			p.fail(c, "list public reviews", err)
			return
		}
		data.PublicReviews = reviews
	}

	if session.IsAdmin() {
		reviews, err := p.reviewUsecase.ListFull(ctx)
		if err != nil {
			p.fail(c, "list reviews", err)
			return
		}
		data.AdminReviews = reviews
	}
	data.NoReviews = msgNoReviews

	c.HTML(status, "reviews.html", data)
}

func (p *Pages) saveSession(c *gin.Context, session *authdomain.Session) bool {
	if err := authDelivery.SaveSession(c, p.authUsecase, session, p.secureCookies); err != nil {
		p.fail(c, "save session", err)
		return false
	}
	return true
}

func (p *Pages) fail(c *gin.Context, op string, err error) {
	slog.Error("[Pages] "+op, "error", err)
	_ = c.Error(err)
	p.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}

func (p *Pages) renderError(c *gin.Context, status int, message string) {
	data := pageData{
		Title: "Error",
		Menu:  menuEntries(-1),
		Error: message,
	}
	c.HTML(status, "error.html", data)
}
