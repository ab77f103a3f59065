package usecase

import (
	"context"
	"errors"
	"fmt"

	"tweetmood/internal/review/domain"
	reviewdto "tweetmood/internal/review/dto"
	"tweetmood/internal/review/repository"

	"github.com/go-playground/validator/v10"
)

// reviewUsecase implements ReviewUsecase interface
type reviewUsecase struct {
	reviewRepo repository.ReviewRepository
	validate   *validator.Validate
}

// NewReviewUsecase creates a new instance of reviewUsecase
func NewReviewUsecase(reviewRepo repository.ReviewRepository) ReviewUsecase {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("gmail", func(fl validator.FieldLevel) bool {
		return domain.EmailPattern.MatchString(fl.Field().String())
	})

	return &reviewUsecase{
		reviewRepo: reviewRepo,
		validate:   v,
	}
}

func (u *reviewUsecase) Submit(ctx context.Context, req reviewdto.SubmitReviewRequest) (*domain.Review, error) {
	if err := u.validateSubmission(req); err != nil {
		return nil, err
	}

	review := &domain.Review{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Review,
	}
	if err := u.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("store review: %w", err)
	}
	return review, nil
}

// validateSubmission reports a missing field before a malformed email.
func (u *reviewUsecase) validateSubmission(req reviewdto.SubmitReviewRequest) error {
	err := u.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return domain.ErrMissingFields
		}
	}
	return domain.ErrInvalidEmail
}

func (u *reviewUsecase) ListPublic(ctx context.Context) ([]domain.PublicReview, error) {
	return u.reviewRepo.ListPublic(ctx)
}

func (u *reviewUsecase) ListFull(ctx context.Context) ([]domain.Review, error) {
	return u.reviewRepo.ListFull(ctx)
}

func (u *reviewUsecase) Delete(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return u.reviewRepo.DeleteByIDs(ctx, ids)
}
