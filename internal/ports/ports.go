package ports

import (
	"context"

	"VeracityScanner/internal/domain"
)

// SentimentClassifier is an advanced model assigning a sentiment label with a score.
type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, text string) (domain.LabelScore, error)
}

// EmotionClassifier is an advanced model returning ranked emotion labels, best first.
type EmotionClassifier interface {
	ClassifyEmotions(ctx context.Context, text string) ([]domain.LabelScore, error)
}

// PolarityScorer computes a compound lexicon polarity in [-1, 1].
type PolarityScorer interface {
	Compound(text string) (float64, error)
}
