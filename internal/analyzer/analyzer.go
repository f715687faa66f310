// Package analyzer scores sentiment, emotion and sensationalism for raw text,
// degrading gracefully across optional capability tiers.
package analyzer

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"VeracityScanner/internal/domain"
	"VeracityScanner/internal/ports"
)

// Capabilities reports which optional tiers were acquired at construction.
// Flags are set once and read-only thereafter.
type Capabilities struct {
	AdvancedSentiment bool
	AdvancedEmotion   bool
	LexiconPolarity   bool
}

// Backends enumerates candidate providers for the optional tiers. Each
// acquisition runs independently; failures demote the tier and never block
// the next attempt.
type Backends struct {
	Sentiment func(ctx context.Context) (ports.SentimentClassifier, error)
	Emotion   func(ctx context.Context) (ports.EmotionClassifier, error)
	Polarity  func(ctx context.Context) (ports.PolarityScorer, error)
}

// Analyzer dispatches text to the highest-available capability tier. The
// rule-based tier is always the terminal element of each tier list.
type Analyzer struct {
	caps           Capabilities
	sentimentTiers []sentimentTier
	emotionTiers   []emotionTier
	logger         *slog.Logger
}

// New probes the optional backends in fixed priority order and assembles the
// tier lists. Safe mode skips both advanced-tier acquisitions regardless of
// availability.
func New(ctx context.Context, backends Backends, safeMode bool, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}

	a := &Analyzer{logger: logger}

	if safeMode {
		logger.Warn("running in safe mode, skipping advanced analysis tiers")
	}

	if !safeMode && backends.Sentiment != nil {
		if model, err := backends.Sentiment(ctx); err != nil {
			logger.Warn("advanced sentiment model unavailable", "error", err)
		} else if model != nil {
			a.caps.AdvancedSentiment = true
			a.sentimentTiers = append(a.sentimentTiers, advancedSentimentTier{model: model})
		}
	}

	if !safeMode && backends.Emotion != nil {
		if model, err := backends.Emotion(ctx); err != nil {
			logger.Warn("advanced emotion model unavailable", "error", err)
		} else if model != nil {
			a.caps.AdvancedEmotion = true
			a.emotionTiers = append(a.emotionTiers, advancedEmotionTier{model: model})
		}
	}

	if backends.Polarity != nil {
		if scorer, err := backends.Polarity(ctx); err != nil {
			logger.Warn("lexicon polarity scorer unavailable", "error", err)
		} else if scorer != nil {
			a.caps.LexiconPolarity = true
			a.sentimentTiers = append(a.sentimentTiers, polaritySentimentTier{scorer: scorer})
		}
	}

	a.sentimentTiers = append(a.sentimentTiers, ruleSentimentTier{})
	a.emotionTiers = append(a.emotionTiers, ruleEmotionTier{})

	logger.Info("analyzer initialized",
		"advanced_sentiment", a.caps.AdvancedSentiment,
		"advanced_emotion", a.caps.AdvancedEmotion,
		"lexicon_polarity", a.caps.LexiconPolarity)

	return a
}

// Capabilities returns the flags resolved at construction.
func (a *Analyzer) Capabilities() Capabilities {
	return a.caps
}

// Analyze scores the text. Errors from advanced tiers are recoverable: the
// dispatcher falls through to the next tier, terminating at the rule-based
// implementation, so every call returns a well-formed result.
func (a *Analyzer) Analyze(ctx context.Context, text string) domain.SentimentResult {
	result := domain.NeutralResult()
	if utf8.RuneCountInString(text) < 3 {
		return result
	}

	for _, tier := range a.sentimentTiers {
		sentiment, confidence, err := tier.Sentiment(ctx, text)
		if err != nil {
			a.logger.Warn("sentiment tier failed, degrading", "tier", tier.Name(), "error", err)
			continue
		}
		result.Sentiment = sentiment
		result.Confidence = confidence
		break
	}

	for _, tier := range a.emotionTiers {
		top, emotions, err := tier.Emotion(ctx, text)
		if err != nil {
			a.logger.Warn("emotion tier failed, degrading", "tier", tier.Name(), "error", err)
			continue
		}
		result.TopEmotion = top
		result.Emotions = emotions
		break
	}

	result.SensationalismScore = sensationalismScore(text)

	a.logger.Debug("analysis complete",
		"sentiment", result.Sentiment,
		"top_emotion", result.TopEmotion,
		"sensationalism", result.SensationalismScore)

	return result
}
