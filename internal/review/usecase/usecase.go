package usecase

import (
	"context"

	"tweetmood/internal/review/domain"
	reviewdto "tweetmood/internal/review/dto"
)

// ReviewUsecase defines the interface for review business logic
type ReviewUsecase interface {
	// Submit validates and stores a new review. Validation failures return
	// domain.ErrMissingFields or domain.ErrInvalidEmail and write nothing.
	Submit(ctx context.Context, req reviewdto.SubmitReviewRequest) (*domain.Review, error)

	// ListPublic returns the public feed (name and body only)
	ListPublic(ctx context.Context) ([]domain.PublicReview, error)

	// ListFull returns every review for the admin view
	ListFull(ctx context.Context) ([]domain.Review, error)

	// Delete removes the given reviews and reports how many rows went away
	Delete(ctx context.Context, ids []uint) (int64, error)
}
