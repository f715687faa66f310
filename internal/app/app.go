package app

import (
	"context"
	"log/slog"

	"VeracityScanner/internal/analyzer"
	"VeracityScanner/internal/config"
	"VeracityScanner/internal/credibility"
	"VeracityScanner/internal/domain"
	"VeracityScanner/internal/hoax"
	"VeracityScanner/internal/infrastructure/inference"
	"VeracityScanner/internal/infrastructure/lexicon"
	"VeracityScanner/internal/logging"
	"VeracityScanner/internal/ports"
)

// Report composes the three independent misinformation signals for one
// article. Verdict aggregation is left to the caller.
type Report struct {
	Sentiment        domain.SentimentResult `json:"sentiment"`
	Source           *domain.DomainRecord   `json:"source,omitempty"`
	DomainType       *domain.DomainType     `json:"domain_type,omitempty"`
	CredibilityScore *float64               `json:"credibility_score,omitempty"`
	Hoax             domain.HoaxReport      `json:"hoax"`
}

// Application wires configuration to the signal producers.
type Application struct {
	analyzer *analyzer.Analyzer
	scorer   *credibility.Scorer
	matcher  *hoax.Matcher
	logger   *slog.Logger
}

// New builds a runnable application instance, probing optional backends once.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	backends := analyzer.Backends{
		Polarity: func(context.Context) (ports.PolarityScorer, error) {
			return lexicon.NewVader(), nil
		},
	}

	if cfg.Inference.Endpoint != "" {
		client := inference.NewClient(cfg.Inference)
		backends.Sentiment = func(ctx context.Context) (ports.SentimentClassifier, error) {
			if err := client.Ping(ctx); err != nil {
				return nil, err
			}
			return client, nil
		}
		backends.Emotion = func(ctx context.Context) (ports.EmotionClassifier, error) {
			if err := client.Ping(ctx); err != nil {
				return nil, err
			}
			return client, nil
		}
	}

	var overrides map[string]credibility.ReputationEntry
	if path := cfg.Reputation.OverridesPath; path != "" {
		loaded, err := credibility.LoadReputationOverrides(path)
		if err != nil {
			baseLogger.Warn("reputation overrides not loaded", "path", path, "error", err)
		} else {
			overrides = loaded
		}
	}

	return &Application{
		analyzer: analyzer.New(ctx, backends, cfg.Analysis.SafeMode, baseLogger.With("component", "analyzer")),
		scorer:   credibility.NewScorer(cfg.Probe, overrides, baseLogger.With("component", "credibility")),
		matcher:  hoax.NewMatcher(baseLogger.With("component", "hoax")),
		logger:   baseLogger.With("component", "app"),
	}
}

// Assess runs every signal producer over the inputs. An empty URL skips the
// source-side signals; an empty text yields the neutral analysis default.
func (a *Application) Assess(ctx context.Context, url, text string) Report {
	report := Report{
		Sentiment: a.analyzer.Analyze(ctx, text),
		Hoax:      a.matcher.Check(text),
	}

	if url != "" {
		record := a.scorer.AnalyzeSource(ctx, url)
		report.Source = &record

		domainType := credibility.DomainType(url)
		report.DomainType = &domainType

		if score, ok := a.scorer.GetCredibilityScore(ctx, url); ok {
			report.CredibilityScore = &score
		}
	}

	return report
}
