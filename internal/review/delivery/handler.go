package delivery

import (
	"log/slog"
	"net/http"

	"tweetmood/internal/review/domain"
	reviewdto "tweetmood/internal/review/dto"
	"tweetmood/internal/review/usecase"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles review-related JSON requests
type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewUsecase usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
	}
}

// ListPublic returns the public review feed
// GET /api/reviews
func (h *ReviewHandler) ListPublic(c *gin.Context) {
	reviews, err := h.reviewUsecase.ListPublic(c.Request.Context())
	if err != nil {
		internalError(c, "list public reviews", err)
		return
	}

	if reviews == nil {
		reviews = []domain.PublicReview{}
	}
	c.JSON(http.StatusOK, reviewdto.PublicReviewsResponse{Reviews: reviews})
}

// Submit stores a new review
// POST /api/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req reviewdto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewUsecase.Submit(c.Request.Context(), req)
	if err != nil {
		if domain.IsValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		internalError(c, "submit review", err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListFull returns every review with email and id
// GET /api/admin/reviews
func (h *ReviewHandler) ListFull(c *gin.Context) {
	reviews, err := h.reviewUsecase.ListFull(c.Request.Context())
	if err != nil {
		internalError(c, "list reviews", err)
		return
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}
	c.JSON(http.StatusOK, reviewdto.ReviewsResponse{
		Reviews: reviews,
		Total:   len(reviews),
	})
}

// Delete removes the reviews listed in the body
// DELETE /api/admin/reviews
func (h *ReviewHandler) Delete(c *gin.Context) {
	var req reviewdto.DeleteReviewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.reviewUsecase.Delete(c.Request.Context(), req.IDs)
	if err != nil {
		internalError(c, "delete reviews", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func internalError(c *gin.Context, op string, err error) {
	slog.Error("[ReviewHandler] "+op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
