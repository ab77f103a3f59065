package domain

import (
	"errors"
	"regexp"
)

// Review is one visitor submission. The body lives in the "review" column so
// the table stays compatible with existing reviews.db files.
type Review struct {
	ID    uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"column:name;type:text"`
	Email string `json:"email" gorm:"column:email;type:text"`
	Body  string `json:"review" gorm:"column:review;type:text"`
}

func (Review) TableName() string { return "reviews" }

// PublicReview is the projection shown on the public feed.
type PublicReview struct {
	Name string `json:"name" gorm:"column:name"`
	Body string `json:"review" gorm:"column:review"`
}

// EmailPattern accepts only gmail.com addresses.
var EmailPattern = regexp.MustCompile(`^[\w.-]+@gmail\.com$`)

var (
	ErrMissingFields = errors.New("please fill out all fields")
	ErrInvalidEmail  = errors.New("please enter a valid email address ending with @gmail.com")
)

// IsValidationError reports whether err was caused by the submitted values.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) || errors.Is(err, ErrInvalidEmail)
}
