// Package urlutil provides URL validation, normalization and resolution
// helpers for sitemap locations.
package urlutil

import (
	"net"
	"net/url"
	"path"
	"strings"
)

// MaxLength is the longest location the sitemap protocol permits.
const MaxLength = 2048

// Extensions considered safe for web page locations. A URL with no extension
// at all is always accepted.
var webExtensions = map[string]bool{
	".html":  true,
	".htm":   true,
	".xhtml": true,
	".php":   true,
	".asp":   true,
	".aspx":  true,
	".jsp":   true,
	".cfm":   true,
	".xml":   true,
	".pdf":   true,
	".txt":   true,
	".json":  true,
	".rss":   true,
	".atom":  true,
}

// IsValid reports whether raw is an absolute http or https URL with a
// hostname, no longer than MaxLength.
func IsValid(raw string) bool {
	if raw == "" || len(raw) > MaxLength {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Hostname() != ""
}

// Normalize strips the fragment and collapses an empty path to "/". Invalid
// input is returned unchanged, never an error.
func Normalize(raw string) string {
	if !IsValid(raw) {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Fragment = ""
	u.RawFragment = ""
	if u.Path == "" {
		u.Path = "/"
	}

	return u.String()
}

// Resolve returns raw unchanged when it is already a valid absolute URL,
// otherwise resolves it against base using standard relative resolution
// (scheme-relative hosts, "../" segments, query-only and fragment-only
// inputs). A missing or malformed base leaves raw unmodified.
func Resolve(raw, base string) string {
	if IsValid(raw) {
		return raw
	}

	b, err := url.Parse(base)
	if err != nil || !b.IsAbs() {
		return raw
	}

	r, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	return b.ResolveReference(r).String()
}

// ExtractDomain returns the lowercased hostname of raw, or "" when raw does
// not parse or carries no host.
func ExtractDomain(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	return strings.ToLower(u.Hostname())
}

// IsDomainAllowed reports whether raw's hostname matches one of the allowed
// domains exactly or as a subdomain. Comparison is case-insensitive. An empty
// allowlist permits everything.
func IsDomainAllowed(raw string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}

	host := ExtractDomain(raw)
	if host == "" {
		return false
	}

	for _, domain := range allowed {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain == "" {
			continue
		}
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}

	return false
}

// HasValidWebExtension reports whether raw's path has no extension or one of
// the known web/document/feed extensions, case-insensitive.
func HasValidWebExtension(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if ext == "" {
		return true
	}

	return webExtensions[ext]
}

// IsAccessible reports whether raw is a valid URL that does not point at
// localhost, a loopback address or an RFC 1918 private range. This is a
// best-effort heuristic, not an authoritative reachability check.
func IsAccessible(raw string) bool {
	if !IsValid(raw) {
		return false
	}

	host := ExtractDomain(raw)
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return false
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return true
	}

	return !ip.IsLoopback() && !ip.IsPrivate()
}
