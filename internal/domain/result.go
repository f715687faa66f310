package domain

import "time"

// Sentiment labels produced by every analysis tier.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
)

// EmotionNone marks text with no detectable emotion signal.
const EmotionNone = "none"

// SentimentResult aggregates sentiment, emotion and sensationalism signals
// for a single piece of text.
type SentimentResult struct {
	Sentiment           Sentiment          `json:"sentiment"`
	Confidence          float64            `json:"confidence"`
	TopEmotion          string             `json:"top_emotion"`
	Emotions            map[string]float64 `json:"emotions"`
	SensationalismScore float64            `json:"sensationalism_score"`
}

// NeutralResult is the fixed default returned for empty or too-short text.
func NeutralResult() SentimentResult {
	return SentimentResult{
		Sentiment:  SentimentNeutral,
		TopEmotion: EmotionNone,
		Emotions:   map[string]float64{},
	}
}

// LabelScore is one ranked label from a classification model.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Category buckets a source by overall reliability.
type Category string

const (
	CategoryReliable       Category = "RELIABLE"
	CategoryMostlyReliable Category = "MOSTLY_RELIABLE"
	CategoryMixed          Category = "MIXED"
	CategoryQuestionable   Category = "QUESTIONABLE"
	CategoryUnreliable     Category = "UNRELIABLE"
	CategoryFactChecker    Category = "FACT_CHECKER"
	CategoryLikelyReliable Category = "LIKELY_RELIABLE"
	CategoryUnknown        Category = "UNKNOWN"
)

// Bias labels the political lean recorded for a source.
type Bias string

const (
	BiasCenter       Bias = "CENTER"
	BiasLeft         Bias = "LEFT"
	BiasSlightLeft   Bias = "SLIGHT_LEFT"
	BiasRight        Bias = "RIGHT"
	BiasSlightRight  Bias = "SLIGHT_RIGHT"
	BiasExtremeRight Bias = "EXTREME_RIGHT"
	BiasUnknown      Bias = "UNKNOWN"
)

// RecordSource says which resolution path produced a DomainRecord. Cache
// hits return the stored record unmodified, so RecordFromCache never appears
// on a record itself; it names the value reserved for callers that tag
// provenance externally.
type RecordSource string

const (
	RecordFromDatabase        RecordSource = "database"
	RecordFromCache           RecordSource = "cache"
	RecordFromAnalysis        RecordSource = "analysis"
	RecordFromLimitedAnalysis RecordSource = "limited_analysis"
)

// Feature keys populated by live domain analysis.
const (
	FeatureHTTPS         = "https"
	FeatureContactInfo   = "contact_info"
	FeatureAboutPage     = "about_page"
	FeaturePrivacyPolicy = "privacy_policy"
)

// DomainRecord is the credibility verdict for a single source URL.
type DomainRecord struct {
	URL              string          `json:"url"`
	Domain           string          `json:"domain"`
	BaseDomain       string          `json:"base_domain"`
	CredibilityScore float64         `json:"credibility_score"`
	Category         Category        `json:"category"`
	Bias             Bias            `json:"bias"`
	Source           RecordSource    `json:"source"`
	Reason           string          `json:"reason,omitempty"`
	Features         map[string]bool `json:"features,omitempty"`
	Timestamp        time.Time       `json:"timestamp"`
}

// DomainType classifies a domain purely by TLD and a small known-organization list.
type DomainType struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Domain type labels.
const (
	DomainTypeOfficial       = "official"
	DomainTypeFactChecker    = "fact_checker"
	DomainTypeOrganization   = "organization"
	DomainTypeMainstreamNews = "mainstream_news"
	DomainTypeCommercial     = "commercial"
	DomainTypeSuspicious     = "suspicious"
	DomainTypeOther          = "other"
)

// HoaxReport lists every matched hoax pattern grouped by category.
type HoaxReport struct {
	IsHoax  bool                `json:"is_hoax"`
	Matches map[string][]string `json:"matches,omitempty"`
}
