package delivery

import (
	"net/http"
	"strings"

	authdomain "tweetmood/internal/auth/domain"
	"tweetmood/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "tweetmood_session"
	sessionKey    = "session"
)

// SessionMiddleware restores the visitor session from the session cookie or a
// Bearer token. Missing or invalid tokens start a fresh session.
func SessionMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *authdomain.Session
		if token := requestToken(c); token != "" {
			if parsed, err := authUsecase.ParseToken(token); err == nil {
				session = parsed
			}
		}
		if session == nil {
			session = authUsecase.NewSession()
		}

		c.Set(sessionKey, session)
		c.Request = c.Request.WithContext(authdomain.NewContext(c.Request.Context(), session))
		c.Next()
	}
}

// AdminMiddleware rejects requests whose session is not an authenticated admin.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil || !session.IsAdmin() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "admin authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session installed by SessionMiddleware.
func CurrentSession(c *gin.Context) *authdomain.Session {
	if v, ok := c.Get(sessionKey); ok {
		if session, ok := v.(*authdomain.Session); ok {
			return session
		}
	}
	session, _ := authdomain.FromContext(c.Request.Context())
	return session
}

// SaveSession re-signs the session and writes it back as a cookie.
func SaveSession(c *gin.Context, authUsecase usecase.AuthUsecase, session *authdomain.Session, secure bool) error {
	token, err := authUsecase.IssueToken(session)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	// MaxAge 0 keeps it a browser-session cookie; the token carries its own expiry.
	c.SetCookie(SessionCookie, token, 0, "/", "", secure, true)
	return nil
}

func requestToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
