// Package hoax detects known misinformation narratives through co-occurrence
// regular expressions grouped by category.
package hoax

import (
	"log/slog"
	"regexp"

	"VeracityScanner/internal/domain"
)

// Every pattern requires co-occurrence of multiple topic terms rather than a
// single keyword, so legitimate reporting on the same topics stays clean.
var patternSets = []struct {
	category string
	patterns []string
}{
	{
		category: "astronomical_disasters",
		patterns: []string{
			`(?i)\bplanet(?:ary)?\s+alignment\b.*\b(disaster|catastrophe|blackout)\b`,
			`(?i)\b(venus|mars|jupiter|saturn)\b.*\b(align\w*)\b.*\b(disaster|catastrophe|blackout)\b`,
			`(?i)\b(celestial\s+event)\b.*\b(power\s+outage|blackout)\b`,
			`(?i)\b(nasa|scientists)\b.*\b(covering\s+up|hiding|conceal)\b.*\b(planet|asteroid|meteor)\b`,
		},
	},
	{
		category: "health_conspiracies",
		patterns: []string{
			`(?i)\b(vaccine|vaccination)\b.*\b(autism|mind\s+control|track|chip|5g)\b`,
			`(?i)\b(cure\s+for\s+cancer|cure\s+for\s+all\s+disease)\b.*\b(suppressed|hidden|secret)\b`,
			`(?i)\b(miracle\s+cure|miracle\s+mineral\s+solution|mms)\b`,
		},
	},
	{
		category: "political_conspiracies",
		patterns: []string{
			`(?i)\b(deep\s+state|cabal|illuminati|new\s+world\s+order|nwo)\b`,
			`(?i)\b(government|cia|fbi)\b.*\b(controlling|control|manipulate)\b.*\b(weather|minds|population)\b`,
			`(?i)\b(microchip|rfid)\b.*\b(implant|track|control)\b.*\b(human|people|citizen)\b`,
		},
	},
}

type category struct {
	name     string
	patterns []*regexp.Regexp
}

// Matcher applies the immutable category-grouped pattern set to raw text.
type Matcher struct {
	categories []category
	logger     *slog.Logger
}

// NewMatcher compiles the fixed pattern set.
func NewMatcher(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Matcher{logger: logger}
	for _, set := range patternSets {
		compiled := make([]*regexp.Regexp, 0, len(set.patterns))
		for _, pattern := range set.patterns {
			compiled = append(compiled, regexp.MustCompile(pattern))
		}
		m.categories = append(m.categories, category{name: set.category, patterns: compiled})
	}
	return m
}

// Check reports whether any pattern matches and records every matching
// pattern per category, not just the first.
func (m *Matcher) Check(text string) domain.HoaxReport {
	matches := map[string][]string{}
	for _, cat := range m.categories {
		for _, pattern := range cat.patterns {
			if pattern.MatchString(text) {
				matches[cat.name] = append(matches[cat.name], pattern.String())
			}
		}
	}

	if len(matches) == 0 {
		return domain.HoaxReport{IsHoax: false, Matches: map[string][]string{}}
	}

	m.logger.Warn("hoax patterns found in text", "categories", len(matches))
	return domain.HoaxReport{IsHoax: true, Matches: matches}
}
