package credibility

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Homepage bodies are read up to this many bytes during live analysis.
const maxProbeBody = 2 << 20

var (
	aboutLinkExpr   = regexp.MustCompile(`(?i)about`)
	contactLinkExpr = regexp.MustCompile(`(?i)contact`)
	adClassExpr     = regexp.MustCompile(`(?i)ad|advertisement`)
)

// pageSignals summarizes the transparency and clutter cues of one page.
type pageSignals struct {
	hasAboutLink         bool
	hasContactLink       bool
	adContainers         int
	sensationalHeadlines int
}

// fetchBody GETs the target with browser-like headers and returns the body.
func (s *Scorer) fetchBody(ctx context.Context, client *http.Client, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProbeBody))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}

// fetchDocument fetches and parses the target as an HTML document.
func (s *Scorer) fetchDocument(ctx context.Context, client *http.Client, target string) (*goquery.Document, error) {
	body, err := s.fetchBody(ctx, client, target)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// extractPageSignals queries anchors, iframes, ad-like containers and
// headline elements.
func extractPageSignals(doc *goquery.Document) pageSignals {
	var signals pageSignals

	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := sel.Text()
		if !signals.hasAboutLink && aboutLinkExpr.MatchString(text) {
			signals.hasAboutLink = true
		}
		if !signals.hasContactLink && contactLinkExpr.MatchString(text) {
			signals.hasContactLink = true
		}
		return !(signals.hasAboutLink && signals.hasContactLink)
	})

	signals.adContainers = doc.Find("iframe").Length()
	doc.Find("div").Each(func(_ int, sel *goquery.Selection) {
		if class, ok := sel.Attr("class"); ok && adClassExpr.MatchString(class) {
			signals.adContainers++
		}
	})

	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		text := strings.ToLower(sel.Text())
		for _, phrase := range sensationalHeadlinePhrases {
			if strings.Contains(text, phrase) {
				signals.sensationalHeadlines++
				break
			}
		}
	})

	return signals
}
