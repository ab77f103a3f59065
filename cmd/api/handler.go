package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	authUsecase "tweetmood/internal/auth/usecase"
	reviewUsecase "tweetmood/internal/review/usecase"
	sentimentUsecase "tweetmood/internal/sentiment/usecase"
	"tweetmood/internal/web"
	"tweetmood/pkg/config"
	"tweetmood/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sentimentUsecase sentimentUsecase.SentimentUsecase
	reviewUsecase    reviewUsecase.ReviewUsecase
	authUsecase      authUsecase.AuthUsecase
	config           *config.Config
}

func NewHandler(sentimentUc sentimentUsecase.SentimentUsecase, reviewUc reviewUsecase.ReviewUsecase, authUc authUsecase.AuthUsecase, cfg *config.Config) *Handler {
	return &Handler{
		sentimentUsecase: sentimentUc,
		reviewUsecase:    reviewUc,
		authUsecase:      authUc,
		config:           cfg,
	}
}

// Engine builds the gin engine with middleware, API routes and HTML pages.
func (h *Handler) Engine() (*gin.Engine, error) {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	pages := web.NewPages(h.sentimentUsecase, h.reviewUsecase, h.authUsecase, h.config.ContactAddress, h.config.IsProduction())
	if err := SetupRoutes(r, h.sentimentUsecase, h.reviewUsecase, h.authUsecase, pages); err != nil {
		return nil, err
	}
	return r, nil
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (h *Handler) Run(ctx context.Context, addr string) error {
	engine, err := h.Engine()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("[Server] listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("[Server] shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.config.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
