package app

import (
	"context"
	"testing"

	"VeracityScanner/internal/config"
	"VeracityScanner/internal/domain"
)

func TestAssessComposesAllSignals(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Analysis: config.AnalysisConfig{SafeMode: true},
		Probe:    config.ProbeConfig{MinIntervalMillis: 1},
	}

	application := New(context.Background(), cfg, nil)

	text := "NASA confirms that a planetary alignment of Venus and Jupiter " +
		"WILL cause a NATIONWIDE blackout!!! Prepare for 15 days without electricity!!!"

	// reuters.com resolves on every URL path without touching the network.
	report := application.Assess(context.Background(), "https://www.reuters.com/science/story", text)

	if !report.Hoax.IsHoax {
		t.Fatalf("expected hoax detection")
	}
	if len(report.Hoax.Matches["astronomical_disasters"]) == 0 {
		t.Fatalf("expected astronomical_disasters matches, got %v", report.Hoax.Matches)
	}

	if report.Sentiment.SensationalismScore < 0.2 {
		t.Fatalf("expected elevated sensationalism, got %v", report.Sentiment.SensationalismScore)
	}

	if report.Source == nil || report.Source.Reason != "Matches known credible source" {
		t.Fatalf("unexpected source record: %+v", report.Source)
	}

	if report.CredibilityScore == nil || *report.CredibilityScore != 0.95 {
		t.Fatalf("expected credibility score 0.95, got %v", report.CredibilityScore)
	}

	if report.DomainType == nil || report.DomainType.Label != domain.DomainTypeMainstreamNews {
		t.Fatalf("unexpected domain type: %+v", report.DomainType)
	}
}

func TestAssessWithoutURL(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Analysis: config.AnalysisConfig{SafeMode: true},
		Probe:    config.ProbeConfig{MinIntervalMillis: 1},
	}

	application := New(context.Background(), cfg, nil)
	report := application.Assess(context.Background(), "", "hi")

	if report.Source != nil || report.CredibilityScore != nil || report.DomainType != nil {
		t.Fatalf("expected source signals omitted without a URL")
	}
	if report.Sentiment.Sentiment != domain.SentimentNeutral {
		t.Fatalf("short text must return the neutral default, got %+v", report.Sentiment)
	}
}
