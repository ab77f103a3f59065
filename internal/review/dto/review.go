package dto

import reviewdomain "tweetmood/internal/review/domain"

type SubmitReviewRequest struct {
	Name   string `json:"name" form:"name" validate:"required"`
	Email  string `json:"email" form:"email" validate:"required,gmail"`
	Review string `json:"review" form:"review" validate:"required"`
}

type DeleteReviewsRequest struct {
	IDs []uint `json:"ids" form:"ids"`
}

type PublicReviewsResponse struct {
	Reviews []reviewdomain.PublicReview `json:"reviews"`
}

type ReviewsResponse struct {
	Reviews []reviewdomain.Review `json:"reviews"`
	Total   int                   `json:"total"`
}
