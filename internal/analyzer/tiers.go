package analyzer

import (
	"context"
	"math"
	"strings"

	"VeracityScanner/internal/domain"
	"VeracityScanner/internal/ports"
)

// Advanced models accept at most this many runes per request.
const modelInputLimit = 512

// sentimentTier is one interchangeable sentiment implementation; tiers run in
// priority order and the first success wins.
type sentimentTier interface {
	Name() string
	Sentiment(ctx context.Context, text string) (domain.Sentiment, float64, error)
}

// emotionTier mirrors sentimentTier for emotion classification.
type emotionTier interface {
	Name() string
	Emotion(ctx context.Context, text string) (string, map[string]float64, error)
}

type advancedSentimentTier struct {
	model ports.SentimentClassifier
}

func (t advancedSentimentTier) Name() string { return "model" }

func (t advancedSentimentTier) Sentiment(ctx context.Context, text string) (domain.Sentiment, float64, error) {
	scored, err := t.model.ClassifySentiment(ctx, truncateRunes(text, modelInputLimit))
	if err != nil {
		return "", 0, err
	}
	return domain.Sentiment(strings.ToUpper(scored.Label)), round2(scored.Score), nil
}

type polaritySentimentTier struct {
	scorer ports.PolarityScorer
}

func (t polaritySentimentTier) Name() string { return "lexicon" }

func (t polaritySentimentTier) Sentiment(ctx context.Context, text string) (domain.Sentiment, float64, error) {
	compound, err := t.scorer.Compound(text)
	if err != nil {
		return "", 0, err
	}

	sentiment := domain.SentimentNeutral
	switch {
	case compound >= 0.05:
		sentiment = domain.SentimentPositive
	case compound <= -0.05:
		sentiment = domain.SentimentNegative
	}
	return sentiment, round2(math.Abs(compound)), nil
}

// ruleSentimentTier is the terminal tier; it cannot fail.
type ruleSentimentTier struct{}

func (ruleSentimentTier) Name() string { return "rules" }

func (ruleSentimentTier) Sentiment(_ context.Context, text string) (domain.Sentiment, float64, error) {
	sentiment, confidence := ruleBasedSentiment(text)
	return sentiment, confidence, nil
}

type advancedEmotionTier struct {
	model ports.EmotionClassifier
}

func (t advancedEmotionTier) Name() string { return "model" }

func (t advancedEmotionTier) Emotion(ctx context.Context, text string) (string, map[string]float64, error) {
	ranked, err := t.model.ClassifyEmotions(ctx, truncateRunes(text, modelInputLimit))
	if err != nil {
		return "", nil, err
	}
	if len(ranked) == 0 {
		return domain.EmotionNone, map[string]float64{}, nil
	}

	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	emotions := make(map[string]float64, len(ranked))
	for _, item := range ranked {
		emotions[item.Label] = round2(item.Score)
	}
	return ranked[0].Label, emotions, nil
}

// ruleEmotionTier is the terminal tier; it cannot fail.
type ruleEmotionTier struct{}

func (ruleEmotionTier) Name() string { return "rules" }

func (ruleEmotionTier) Emotion(_ context.Context, text string) (string, map[string]float64, error) {
	top, emotions := ruleBasedEmotion(text)
	return top, emotions, nil
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
