package repository

import (
	"context"

	"tweetmood/internal/review/domain"

	"gorm.io/gorm"
)

// gormReviewRepository implements ReviewRepository using GORM
type gormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GORM-based ReviewRepository
func NewGormReviewRepository(db *gorm.DB) ReviewRepository {
	return &gormReviewRepository{db: db}
}

func (r *gormReviewRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&domain.Review{})
}

func (r *gormReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	review.ID = 0
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *gormReviewRepository) ListPublic(ctx context.Context) ([]domain.PublicReview, error) {
	var reviews []domain.PublicReview
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("name", "review").
		Order("id").
		Find(&reviews).Error
	return reviews, err
}

func (r *gormReviewRepository) ListFull(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).Order("id").Find(&reviews).Error
	return reviews, err
}

func (r *gormReviewRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&domain.Review{})
	return result.RowsAffected, result.Error
}

func (r *gormReviewRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Review{}).Count(&total).Error
	return total, err
}
