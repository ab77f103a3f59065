package repository

import (
	"context"

	"tweetmood/internal/review/domain"
)

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	// Migrate creates the reviews table if it does not exist
	Migrate(ctx context.Context) error

	// Create inserts a review and fills in its assigned ID
	Create(ctx context.Context, review *domain.Review) error

	// ListPublic returns name and body of every review in insertion order
	ListPublic(ctx context.Context) ([]domain.PublicReview, error)

	// ListFull returns every column of every review in insertion order
	ListFull(ctx context.Context) ([]domain.Review, error)

	// DeleteByIDs removes the given reviews; unknown IDs are ignored
	DeleteByIDs(ctx context.Context, ids []uint) (int64, error)

	// Count returns the number of stored reviews
	Count(ctx context.Context) (int64, error)
}
