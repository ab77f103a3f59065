package api

import (
	"net/http"

	authDelivery "tweetmood/internal/auth/delivery"
	authUsecase "tweetmood/internal/auth/usecase"
	reviewDelivery "tweetmood/internal/review/delivery"
	reviewUsecase "tweetmood/internal/review/usecase"
	sentimentDelivery "tweetmood/internal/sentiment/delivery"
	sentimentUsecase "tweetmood/internal/sentiment/usecase"
	"tweetmood/internal/web"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, sentimentUc sentimentUsecase.SentimentUsecase, reviewUc reviewUsecase.ReviewUsecase, authUc authUsecase.AuthUsecase, pages *web.Pages) error {
	sentimentHandler := sentimentDelivery.NewSentimentHandler(sentimentUc)
	reviewHandler := reviewDelivery.NewReviewHandler(reviewUc)
	authHandler := authDelivery.NewAuthHandler(authUc)

	// Every route sees the visitor session.
	r.Use(authDelivery.SessionMiddleware(authUc))

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/sentiment", sentimentHandler.Analyze)
		api.GET("/session", authHandler.Me)

		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewHandler.ListPublic)
			reviews.POST("", reviewHandler.Submit)
		}

		api.POST("/admin/login", authHandler.Login)

		// Admin routes (protected)
		admin := api.Group("/admin")
		admin.Use(authDelivery.AdminMiddleware())
		{
			admin.GET("/reviews", reviewHandler.ListFull)
			admin.DELETE("/reviews", reviewHandler.Delete)
		}
	}

	// HTML pages
	return pages.Register(r)
}
