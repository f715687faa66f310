package analyzer

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"VeracityScanner/internal/domain"
)

// Fixed lexicons for the terminal rule-based tier.
var (
	positiveWords = []string{
		"good", "great", "excellent", "amazing", "wonderful", "fantastic",
		"terrific", "outstanding", "superb", "brilliant", "exceptional",
		"positive", "success", "win", "victory", "breakthrough",
	}

	negativeWords = []string{
		"bad", "terrible", "horrible", "awful", "poor", "disappointing",
		"catastrophic", "disaster", "fail", "failure", "crisis", "problem",
		"negative", "worst", "corrupt", "false", "fake",
	}

	sensationalWords = []string{
		"shocking", "incredible", "unbelievable", "explosive", "bombshell",
		"secret", "exclusive", "breaking", "urgent", "emergency", "disaster",
		"catastrophe", "crisis", "miracle", "revolutionary", "game-changing",
		"mind-blowing", "devastating", "massive", "horrific", "epic",
	}

	// Declaration order breaks ties in the rule-based emotion tier.
	emotionOrder    = []string{"anger", "fear", "joy", "sadness", "surprise"}
	emotionLexicons = map[string][]string{
		"anger":    {"angry", "mad", "furious", "outraged", "rage"},
		"fear":     {"afraid", "scared", "frightened", "terrified", "panic"},
		"joy":      {"happy", "delighted", "pleased", "joyful", "excited"},
		"sadness":  {"sad", "unhappy", "depressed", "miserable", "grief"},
		"surprise": {"surprised", "shocked", "amazed", "astonished", "startled"},
	}
)

var wordExprs = map[string]*regexp.Regexp{}

func init() {
	var all []string
	all = append(all, positiveWords...)
	all = append(all, negativeWords...)
	all = append(all, sensationalWords...)
	for _, words := range emotionLexicons {
		all = append(all, words...)
	}
	for _, word := range all {
		if _, ok := wordExprs[word]; !ok {
			wordExprs[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		}
	}
}

func countLexiconMatches(text string, words []string) int {
	count := 0
	for _, word := range words {
		count += len(wordExprs[word].FindAllStringIndex(text, -1))
	}
	return count
}

// ruleBasedSentiment counts whole-word lexicon hits; one count family must
// exceed the other by 50% to leave NEUTRAL.
func ruleBasedSentiment(text string) (domain.Sentiment, float64) {
	positive := countLexiconMatches(text, positiveWords)
	negative := countLexiconMatches(text, negativeWords)

	sentiment := domain.SentimentNeutral
	switch {
	case float64(positive) > float64(negative)*1.5:
		sentiment = domain.SentimentPositive
	case float64(negative) > float64(positive)*1.5:
		sentiment = domain.SentimentNegative
	}

	totalWords := len(strings.Fields(text))
	if totalWords == 0 {
		return sentiment, 0
	}

	confidence := math.Min(0.7, math.Max(0.3, float64(positive+negative)/float64(totalWords)))
	return sentiment, round2(confidence)
}

// ruleBasedEmotion returns the dominant lexicon emotion and per-category hit
// counts; all-zero counts yield "none".
func ruleBasedEmotion(text string) (string, map[string]float64) {
	emotions := make(map[string]float64, len(emotionOrder))
	top := domain.EmotionNone
	best := 0
	for _, emotion := range emotionOrder {
		count := countLexiconMatches(text, emotionLexicons[emotion])
		emotions[emotion] = float64(count)
		if count > best {
			best = count
			top = emotion
		}
	}
	return top, emotions
}

// sensationalismScore blends charged vocabulary, all-caps usage and
// exclamation/question density into [0, 1].
func sensationalismScore(text string) float64 {
	totalWords := len(strings.Fields(text))
	if totalWords == 0 {
		return 0
	}

	hits := countLexiconMatches(text, sensationalWords)
	lexical := math.Min(1, float64(hits)/(float64(totalWords)/10))

	capsCount := 0
	for _, word := range strings.Fields(text) {
		if len([]rune(word)) > 3 && isAllCaps(word) {
			capsCount++
		}
	}
	caps := math.Min(1, float64(capsCount)/(float64(totalWords)/5))

	punct := strings.Count(text, "!") + strings.Count(text, "?")
	punctuation := math.Min(1, float64(punct)/(float64(totalWords)/5))

	return round2(math.Min(1, (lexical+caps+punctuation)/3))
}

func isAllCaps(word string) bool {
	hasLetter := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
