package delivery

import (
	"net/http"

	"tweetmood/internal/sentiment/dto"
	"tweetmood/internal/sentiment/usecase"

	"github.com/gin-gonic/gin"
)

// ErrEmptyText is shown when there is nothing to classify.
const ErrEmptyText = "please enter a text to analyze"

type SentimentHandler struct {
	sentimentUsecase usecase.SentimentUsecase
}

func NewSentimentHandler(sentimentUsecase usecase.SentimentUsecase) *SentimentHandler {
	return &SentimentHandler{
		sentimentUsecase: sentimentUsecase,
	}
}

// Analyze classifies the submitted text
// POST /api/sentiment
func (h *SentimentHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrEmptyText})
		return
	}

	c.JSON(http.StatusOK, h.sentimentUsecase.Analyze(req.Text))
}
