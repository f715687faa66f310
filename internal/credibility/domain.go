package credibility

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"VeracityScanner/internal/domain"
)

// normalizeURL assumes https when the scheme is absent.
func normalizeURL(raw string) string {
	if !strings.Contains(raw, "://") {
		return "https://" + raw
	}
	return raw
}

// extractDomain yields the lowercased host without port or leading "www.",
// or "" when the URL cannot be parsed.
func extractDomain(raw string) string {
	parsed, err := url.Parse(normalizeURL(raw))
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	return host
}

var (
	genericSecondLabels = map[string]bool{"co": true, "com": true, "org": true, "net": true, "gov": true, "edu": true}
	countryCodes        = map[string]bool{"uk": true, "au": true, "nz": true, "jp": true}
)

// baseDomain keeps the trailing three labels for multi-label country-code
// domains (news.bbc.co.uk -> bbc.co.uk) and the trailing two otherwise
// (blog.nytimes.com -> nytimes.com).
func baseDomain(host string) string {
	parts := strings.Split(host, ".")
	if len(parts) <= 2 {
		return host
	}

	if genericSecondLabels[parts[len(parts)-2]] && countryCodes[parts[len(parts)-1]] {
		if len(parts) > 3 {
			return strings.Join(parts[len(parts)-3:], ".")
		}
		return host
	}

	return strings.Join(parts[len(parts)-2:], ".")
}

// registrableDomain decomposes a host into its registrar-registered portion
// and the remaining subdomain, using the public-suffix list.
func registrableDomain(host string) (registrable, subdomain string) {
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil || registrable == "" {
		return host, ""
	}

	subdomain = strings.TrimSuffix(strings.TrimSuffix(host, registrable), ".")
	return registrable, subdomain
}

// DomainType classifies a URL purely from its TLD and a small known-organization
// list. It performs no network access.
func DomainType(raw string) domain.DomainType {
	host := extractDomain(raw)
	registrable, _ := registrableDomain(host)

	suffix, _ := publicsuffix.PublicSuffix(host)
	tld := "." + suffix
	name := strings.TrimSuffix(registrable, tld)

	switch {
	case tld == ".gov" || tld == ".edu" || tld == ".mil":
		return domain.DomainType{Label: domain.DomainTypeOfficial, Confidence: 0.9}
	case tld == ".org":
		for _, known := range factCheckerNames {
			if name == known {
				return domain.DomainType{Label: domain.DomainTypeFactChecker, Confidence: 0.9}
			}
		}
		return domain.DomainType{Label: domain.DomainTypeOrganization, Confidence: 0.7}
	case tld == ".com" || tld == ".net":
		for _, known := range mainstreamNewsNames {
			if name == known {
				return domain.DomainType{Label: domain.DomainTypeMainstreamNews, Confidence: 0.85}
			}
		}
		return domain.DomainType{Label: domain.DomainTypeCommercial, Confidence: 0.5}
	}

	for _, suspicious := range suspiciousTLDs {
		if tld == suspicious {
			return domain.DomainType{Label: domain.DomainTypeSuspicious, Confidence: 0.3}
		}
	}

	return domain.DomainType{Label: domain.DomainTypeOther, Confidence: 0.5}
}
