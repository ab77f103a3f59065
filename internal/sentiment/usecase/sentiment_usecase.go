package usecase

import (
	"tweetmood/internal/sentiment/domain"

	"github.com/jonreiter/govader"
)

// SentimentUsecase classifies free text with the VADER lexicon.
type SentimentUsecase interface {
	Classify(text string) domain.Label
	Analyze(text string) domain.Analysis
}

// Scorer is the part of govader the usecase relies on.
type Scorer interface {
	PolarityScores(text string) govader.Sentiment
}

type sentimentUsecase struct {
	scorer Scorer
}

// NewSentimentUsecase builds a usecase backed by the bundled VADER lexicon.
func NewSentimentUsecase() SentimentUsecase {
	return NewSentimentUsecaseWithScorer(govader.NewSentimentIntensityAnalyzer())
}

func NewSentimentUsecaseWithScorer(scorer Scorer) SentimentUsecase {
	return &sentimentUsecase{scorer: scorer}
}

func (u *sentimentUsecase) Classify(text string) domain.Label {
	return u.Analyze(text).Label
}

// Analyze scores the raw text. No markdown or link stripping is applied so the
// compound score stays identical to the reference lexicon.
func (u *sentimentUsecase) Analyze(text string) domain.Analysis {
	scores := u.scorer.PolarityScores(text)
	label := domain.LabelForScore(scores.Compound)

	return domain.Analysis{
		Label:    label,
		Color:    label.Color(),
		Compound: scores.Compound,
		Positive: scores.Positive,
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
	}
}
