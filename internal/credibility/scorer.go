// Package credibility scores the trustworthiness of source URLs by fusing a
// static reputation table, heuristic domain-pattern detection and bounded
// live probing.
package credibility

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"VeracityScanner/internal/config"
	"VeracityScanner/internal/domain"
)

// Scorer resolves credibility records for URLs. The rate limiter and domain
// cache are instance state so independent scorers never interfere.
type Scorer struct {
	table     map[string]ReputationEntry
	userAgent string
	cacheTTL  time.Duration

	mu    sync.Mutex
	cache map[string]domain.DomainRecord

	// limiter gates every outbound probe issued by this instance.
	limiter *rate.Limiter

	homeClient *http.Client
	pageClient *http.Client

	// homepageURL builds the live-analysis target for a domain; tests
	// redirect it at a local server.
	homepageURL func(host string) string

	logger *slog.Logger
}

// NewScorer loads the reputation table (built-ins shadowed by overrides) and
// wires the probe clients.
func NewScorer(cfg config.ProbeConfig, overrides map[string]ReputationEntry, logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}

	table := make(map[string]ReputationEntry, len(builtinReputationTable)+len(overrides))
	for base, entry := range builtinReputationTable {
		table[base] = entry
	}
	for base, entry := range overrides {
		table[base] = entry
	}

	return &Scorer{
		table:       table,
		userAgent:   cfg.ResolvedUserAgent(),
		cacheTTL:    cfg.CacheTTL(),
		cache:       map[string]domain.DomainRecord{},
		limiter:     rate.NewLimiter(rate.Every(cfg.MinInterval()), 1),
		homeClient:  &http.Client{Timeout: cfg.Timeout()},
		pageClient:  &http.Client{Timeout: cfg.PageTimeout()},
		homepageURL: func(host string) string { return "https://" + host },
		logger:      logger,
	}
}

// AnalyzeSource resolves a credibility record for the URL. First match wins:
// literal fragment lists, reputation table, cache, then rate-limited live
// analysis. It never returns an error; reduced data quality is signaled via
// Category, Source and Reason.
func (s *Scorer) AnalyzeSource(ctx context.Context, rawURL string) domain.DomainRecord {
	host := extractDomain(rawURL)
	if host == "" {
		s.logger.Warn("source url is not parseable", "url", rawURL)
		return s.unknownRecord(rawURL, "Invalid URL")
	}

	for _, fragment := range fakeDomainFragments {
		if strings.Contains(host, fragment) {
			s.logger.Warn("domain matches known fake news fragment", "domain", host, "fragment", fragment)
			return s.unknownRecord(rawURL, "Matches known fake news pattern")
		}
	}

	for _, fragment := range credibleDomainFragments {
		if strings.Contains(host, fragment) {
			s.logger.Info("domain matches known credible fragment", "domain", host, "fragment", fragment)
			return s.unknownRecord(rawURL, "Matches known credible source")
		}
	}

	base := baseDomain(host)
	if entry, ok := s.table[base]; ok {
		s.logger.Debug("source found in reputation table", "base_domain", base, "score", entry.Score)
		return domain.DomainRecord{
			URL:              rawURL,
			Domain:           host,
			BaseDomain:       base,
			CredibilityScore: entry.Score,
			Category:         entry.Category,
			Bias:             entry.Bias,
			Source:           domain.RecordFromDatabase,
			Timestamp:        time.Now(),
		}
	}

	if record, ok := s.cachedRecord(host); ok {
		s.logger.Debug("source found in cache", "domain", host)
		return record
	}

	record := s.analyzeDomain(ctx, host, rawURL)

	s.mu.Lock()
	s.cache[host] = record
	s.mu.Unlock()

	return record
}

func (s *Scorer) cachedRecord(host string) (domain.DomainRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.cache[host]
	if !ok {
		return domain.DomainRecord{}, false
	}
	if s.cacheTTL > 0 && time.Since(record.Timestamp) > s.cacheTTL {
		return domain.DomainRecord{}, false
	}
	return record, true
}

// analyzeDomain fetches the homepage once and derives transparency features.
// Network failure yields a minimal record, never an error.
func (s *Scorer) analyzeDomain(ctx context.Context, host, rawURL string) domain.DomainRecord {
	usesHTTPS := strings.HasPrefix(rawURL, "https://")

	record := domain.DomainRecord{
		URL:              rawURL,
		Domain:           host,
		BaseDomain:       baseDomain(host),
		CredibilityScore: 0.5,
		Category:         domain.CategoryUnknown,
		Bias:             domain.BiasUnknown,
		Source:           domain.RecordFromLimitedAnalysis,
		Features:         map[string]bool{domain.FeatureHTTPS: usesHTTPS},
		Timestamp:        time.Now(),
	}

	if err := s.limiter.Wait(ctx); err != nil {
		s.logger.Warn("probe cancelled while rate limited", "domain", host, "error", err)
		return record
	}

	body, err := s.fetchBody(ctx, s.homeClient, s.homepageURL(host))
	if err != nil {
		s.logger.Warn("homepage analysis failed, returning limited record", "domain", host, "error", err)
		return record
	}

	lower := strings.ToLower(body)
	features := map[string]bool{
		domain.FeatureHTTPS:         usesHTTPS,
		domain.FeatureContactInfo:   strings.Contains(lower, "contact"),
		domain.FeatureAboutPage:     strings.Contains(lower, "about"),
		domain.FeaturePrivacyPolicy: strings.Contains(lower, "privacy"),
	}

	score := 0.5
	for _, present := range features {
		if present {
			score += 0.05
		}
	}
	// Feature increments accumulate float error; the band tops out at 0.7.
	score = math.Min(score, 0.7)

	category := domain.CategoryUnknown
	switch {
	case score >= 0.8:
		category = domain.CategoryLikelyReliable
	case score >= 0.6:
		category = domain.CategoryMixed
	case score < 0.4:
		category = domain.CategoryQuestionable
	}

	record.CredibilityScore = score
	record.Category = category
	record.Source = domain.RecordFromAnalysis
	record.Features = features
	return record
}

func (s *Scorer) unknownRecord(rawURL, reason string) domain.DomainRecord {
	host := extractDomain(rawURL)
	if host == "" {
		host = "unknown"
	}

	return domain.DomainRecord{
		URL:              rawURL,
		Domain:           host,
		BaseDomain:       baseDomain(host),
		CredibilityScore: 0.5,
		Category:         domain.CategoryUnknown,
		Bias:             domain.BiasUnknown,
		Source:           domain.RecordFromAnalysis,
		Reason:           reason,
		Timestamp:        time.Now(),
	}
}

// GetCredibilityScore computes a bare credibility score for the URL on an
// independent path with its own allow/deny maps. The second return value is
// false only when the URL is empty. Analyzed domains are clamped to
// [0.1, 0.7] so they never reach the pre-vetted confidence band.
func (s *Scorer) GetCredibilityScore(ctx context.Context, rawURL string) (float64, bool) {
	if rawURL == "" {
		return 0, false
	}

	normalized := normalizeURL(rawURL)
	host := extractDomain(rawURL)
	if host == "" {
		return 0.5, true
	}

	registrable, subdomain := registrableDomain(host)

	if score, ok := credibleScores[registrable]; ok {
		return score, true
	}
	if score, ok := nonCredibleScores[registrable]; ok {
		return score, true
	}

	score := 0.5

	// Each heuristic penalty applies at most once.
	for _, keyword := range suspiciousKeywords {
		if strings.Contains(registrable, keyword) {
			score -= 0.1
			s.logger.Debug("suspicious keyword in domain", "domain", registrable, "keyword", keyword)
			break
		}
	}

	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(registrable, tld) {
			score -= 0.1
			s.logger.Debug("suspicious tld", "domain", registrable, "tld", tld)
			break
		}
	}

	for _, pattern := range fakeDomainPatterns {
		if pattern.MatchString(registrable) {
			score -= 0.2
			s.logger.Debug("domain matches fake news pattern", "domain", registrable, "pattern", pattern.String())
			break
		}
	}

	if subdomain != "" {
		for _, keyword := range suspiciousKeywords {
			if strings.Contains(subdomain, keyword) {
				score -= 0.05
				s.logger.Debug("suspicious keyword in subdomain", "subdomain", subdomain, "keyword", keyword)
				break
			}
		}
	}

	if strings.Contains(registrable, "fake") || strings.Contains(registrable, "hoax") {
		score = 0.1
	}

	if score >= 0.3 && score <= 0.7 {
		score = s.scorePageContent(ctx, normalized, score)
	}

	score = math.Max(0.1, math.Min(0.7, score))
	s.logger.Info("credibility score resolved", "domain", registrable, "score", score)
	return score, true
}

// scorePageContent makes one bounded fetch of the page and adjusts the score
// from transparency and clutter signals. Fetch failure costs a flat 0.05.
func (s *Scorer) scorePageContent(ctx context.Context, target string, score float64) float64 {
	if err := s.limiter.Wait(ctx); err != nil {
		s.logger.Warn("page probe cancelled while rate limited", "url", target, "error", err)
		return score - 0.05
	}

	doc, err := s.fetchDocument(ctx, s.pageClient, target)
	if err != nil {
		s.logger.Warn("page probe failed", "url", target, "error", err)
		return score - 0.05
	}

	signals := extractPageSignals(doc)

	if !signals.hasAboutLink {
		score -= 0.05
	}
	if !signals.hasContactLink {
		score -= 0.05
	}
	if signals.adContainers > 10 {
		score -= 0.1
	}
	if signals.sensationalHeadlines > 2 {
		score -= 0.15
	}

	return score
}
