package lexicon

import (
	"fmt"

	"github.com/jonreiter/govader"

	"VeracityScanner/internal/ports"
)

// Vader adapts the VADER intensity analyzer as the lexicon-polarity tier.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ ports.PolarityScorer = (*Vader)(nil)

// NewVader builds the analyzer with its embedded lexicon.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the normalized compound polarity in [-1, 1].
func (v *Vader) Compound(text string) (float64, error) {
	if v == nil || v.analyzer == nil {
		return 0, fmt.Errorf("vader analyzer is not initialized")
	}
	return v.analyzer.PolarityScores(text).Compound, nil
}
