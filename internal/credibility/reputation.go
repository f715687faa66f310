package credibility

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"VeracityScanner/internal/domain"
)

// ReputationEntry is one row of the static reputation table.
type ReputationEntry struct {
	Score    float64         `yaml:"score"`
	Category domain.Category `yaml:"category"`
	Bias     domain.Bias     `yaml:"bias"`
}

// builtinReputationTable maps base domains to pre-vetted reputation data.
// Loaded once at construction; never mutated afterwards.
var builtinReputationTable = map[string]ReputationEntry{
	"bbc.com":            {Score: 0.95, Category: domain.CategoryReliable, Bias: domain.BiasSlightLeft},
	"reuters.com":        {Score: 0.97, Category: domain.CategoryReliable, Bias: domain.BiasCenter},
	"apnews.com":         {Score: 0.96, Category: domain.CategoryReliable, Bias: domain.BiasCenter},
	"npr.org":            {Score: 0.92, Category: domain.CategoryReliable, Bias: domain.BiasSlightLeft},
	"economist.com":      {Score: 0.93, Category: domain.CategoryReliable, Bias: domain.BiasCenter},
	"wsj.com":            {Score: 0.92, Category: domain.CategoryReliable, Bias: domain.BiasSlightRight},
	"nytimes.com":        {Score: 0.90, Category: domain.CategoryMostlyReliable, Bias: domain.BiasLeft},
	"washingtonpost.com": {Score: 0.89, Category: domain.CategoryMostlyReliable, Bias: domain.BiasLeft},
	"theguardian.com":    {Score: 0.88, Category: domain.CategoryMostlyReliable, Bias: domain.BiasLeft},
	"cnn.com":            {Score: 0.80, Category: domain.CategoryMixed, Bias: domain.BiasLeft},
	"foxnews.com":        {Score: 0.70, Category: domain.CategoryMixed, Bias: domain.BiasRight},

	"infowars.com":    {Score: 0.05, Category: domain.CategoryUnreliable, Bias: domain.BiasExtremeRight},
	"naturalnews.com": {Score: 0.10, Category: domain.CategoryUnreliable, Bias: domain.BiasExtremeRight},
	"breitbart.com":   {Score: 0.40, Category: domain.CategoryQuestionable, Bias: domain.BiasExtremeRight},

	"snopes.com":     {Score: 0.95, Category: domain.CategoryFactChecker, Bias: domain.BiasSlightLeft},
	"factcheck.org":  {Score: 0.95, Category: domain.CategoryFactChecker, Bias: domain.BiasSlightLeft},
	"politifact.com": {Score: 0.93, Category: domain.CategoryFactChecker, Bias: domain.BiasSlightLeft},
}

// Literal fragment denylist; a substring hit short-circuits analyze_source.
var fakeDomainFragments = []string{
	"fakenews", "fakemedia", "hoaxes", "conspiracy",
	"fakenewsmedia.net", "fakereport", "notrealnews",
	"fakesciencenews", "alternativefacts", "totallylegit",
}

// Literal fragment allowlist, checked after the denylist.
var credibleDomainFragments = []string{
	"reuters.com", "apnews.com", "npr.org", "bbc.com",
	"nytimes.com", "washingtonpost.com", "wsj.com",
	"theguardian.com", "economist.com", "bloomberg.com",
}

// Fixed score maps for the independent get_credibility_score path.
var credibleScores = map[string]float64{
	"reuters.com":            0.95,
	"apnews.com":             0.95,
	"bbc.com":                0.9,
	"bbc.co.uk":              0.9,
	"nytimes.com":            0.85,
	"washingtonpost.com":     0.85,
	"theguardian.com":        0.85,
	"npr.org":                0.85,
	"bloomberg.com":          0.8,
	"economist.com":          0.85,
	"wsj.com":                0.8,
	"cnn.com":                0.75,
	"abcnews.go.com":         0.8,
	"nbcnews.com":            0.75,
	"thehill.com":            0.7,
	"politico.com":           0.75,
	"time.com":               0.8,
	"nature.com":             0.95,
	"science.org":            0.95,
	"sciencemag.org":         0.95,
	"newscientist.com":       0.85,
	"scientificamerican.com": 0.9,
	"smithsonianmag.com":     0.85,
	"nationalgeographic.com": 0.85,
	"popsci.com":             0.7,
	"snopes.com":             0.85,
	"factcheck.org":          0.85,
	"politifact.com":         0.85,
}

var nonCredibleScores = map[string]float64{
	"infowars.com":         0.1,
	"naturalnews.com":      0.15,
	"breitbart.com":        0.2,
	"dailycaller.com":      0.3,
	"zerohedge.com":        0.2,
	"sputniknews.com":      0.25,
	"rt.com":               0.3,
	"beforeitsnews.com":    0.1,
	"newsmax.com":          0.4,
	"americanthinker.com":  0.3,
	"thegatewaypundit.com": 0.2,
	"activistpost.com":     0.2,
	"worldtruth.tv":        0.1,
	"wnd.com":              0.3,
}

var suspiciousKeywords = []string{
	"truth", "real", "exposed", "uncensored", "patriot", "freedom",
	"alternative", "conspiracy", "insider", "breaking", "viral",
	"secret", "shocking", "illuminati", "globalist", "wake", "awakening",
	"truther", "planet", "fake", "hoax", "lie", "truenews", "realnews",
}

var suspiciousTLDs = []string{
	".info", ".xyz", ".top", ".biz", ".club", ".site",
	".online", ".pro", ".network", ".ws", ".pw",
}

var fakeDomainPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\w+)truth\.(?:com|org|net|info)`),
	regexp.MustCompile(`real(\w+)news\.(?:com|org|net|info)`),
	regexp.MustCompile(`(\w+)exposed\.(?:com|org|net|info)`),
	regexp.MustCompile(`(\w+)uncensored\.(?:com|org|net|info)`),
	regexp.MustCompile(`(\w+)leaks\.(?:com|org|net|info)`),
	regexp.MustCompile(`(\w+)conspiracy\.(?:com|org|net|info)`),
	regexp.MustCompile(`the(\w+)awakening\.(?:com|org|net|info)`),
	regexp.MustCompile(`(\w+)patriot(\w+)\.(?:com|org|net|info)`),
	regexp.MustCompile(`(\w+)freedom(\w+)\.(?:com|org|net|info)`),
	regexp.MustCompile(`(\w+)truther(\w+)\.(?:com|org|net|info)`),
	regexp.MustCompile(`fakenews(\w+)\.(?:com|org|net|info)`),
	regexp.MustCompile(`(\w+)fakemedia\.(?:com|org|net|info)`),
}

// Phrases counted against headline elements during the scoring-path probe.
var sensationalHeadlinePhrases = []string{
	"shocking", "you won't believe", "incredible",
	"mind-blowing", "secret", "they don't want you to know",
}

// Known organizations consulted by the domain-type classifier.
var (
	factCheckerNames    = []string{"snopes", "factcheck", "politifact"}
	mainstreamNewsNames = []string{"cnn", "bbc", "nytimes", "washingtonpost", "reuters", "ap"}
)

// LoadReputationOverrides parses a YAML file of baseDomain -> entry pairs.
// Returned entries shadow the built-in table.
func LoadReputationOverrides(path string) (map[string]ReputationEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reputation overrides: %w", err)
	}

	overrides := map[string]ReputationEntry{}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse reputation overrides: %w", err)
	}

	return overrides, nil
}
