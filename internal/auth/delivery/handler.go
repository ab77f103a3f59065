package delivery

import (
	"errors"
	"log/slog"
	"net/http"

	"tweetmood/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login exchanges the admin credentials for a Bearer token
// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrAccessDenied.Error()})
		return
	}

	session := h.authUsecase.StartAdminLogin()
	if err := h.authUsecase.Login(session, req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrAccessDenied) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		slog.Error("[AuthHandler] login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := h.authUsecase.IssueToken(session)
	if err != nil {
		slog.Error("[AuthHandler] issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.authUsecase.SessionTTL().Seconds()),
	})
}

// Me reports the state of the caller's session
// GET /api/session
func (h *AuthHandler) Me(c *gin.Context) {
	session := CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"state": session.State.String(),
		"admin": session.IsAdmin(),
	})
}
