package credibility

import (
	"testing"

	"VeracityScanner/internal/domain"
)

func TestExtractDomain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"https://www.reuters.com/world", "reuters.com"},
		{"http://News.BBC.co.uk/article", "news.bbc.co.uk"},
		{"reuters.com/path", "reuters.com"},
		{"https://example.com:8080/x", "example.com"},
		{"http://exa mple.com", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := extractDomain(tc.raw); got != tc.want {
			t.Fatalf("extractDomain(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestBaseDomain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		host string
		want string
	}{
		{"news.bbc.co.uk", "bbc.co.uk"},
		{"blog.nytimes.com", "nytimes.com"},
		{"bbc.co.uk", "bbc.co.uk"},
		{"example.com", "example.com"},
		{"a.b.site.com.au", "site.com.au"},
		{"deep.sub.nytimes.com", "nytimes.com"},
	}

	for _, tc := range cases {
		if got := baseDomain(tc.host); got != tc.want {
			t.Fatalf("baseDomain(%q) = %q, want %q", tc.host, got, tc.want)
		}
	}
}

func TestRegistrableDomain(t *testing.T) {
	t.Parallel()

	registrable, subdomain := registrableDomain("truth.example.com")
	if registrable != "example.com" {
		t.Fatalf("unexpected registrable: %s", registrable)
	}
	if subdomain != "truth" {
		t.Fatalf("unexpected subdomain: %s", subdomain)
	}

	registrable, subdomain = registrableDomain("news.bbc.co.uk")
	if registrable != "bbc.co.uk" {
		t.Fatalf("unexpected registrable: %s", registrable)
	}
	if subdomain != "news" {
		t.Fatalf("unexpected subdomain: %s", subdomain)
	}
}

func TestDomainType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		url            string
		wantLabel      string
		wantConfidence float64
	}{
		{"https://www.nasa.gov/news", domain.DomainTypeOfficial, 0.9},
		{"https://factcheck.org/claim", domain.DomainTypeFactChecker, 0.9},
		{"https://example.org", domain.DomainTypeOrganization, 0.7},
		{"https://www.reuters.com/world", domain.DomainTypeMainstreamNews, 0.85},
		{"https://somecompany.com", domain.DomainTypeCommercial, 0.5},
		{"https://breaking-updates.xyz", domain.DomainTypeSuspicious, 0.3},
	}

	for _, tc := range cases {
		got := DomainType(tc.url)
		if got.Label != tc.wantLabel {
			t.Fatalf("DomainType(%q).Label = %q, want %q", tc.url, got.Label, tc.wantLabel)
		}
		if got.Confidence != tc.wantConfidence {
			t.Fatalf("DomainType(%q).Confidence = %v, want %v", tc.url, got.Confidence, tc.wantConfidence)
		}
	}
}
