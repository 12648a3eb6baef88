package urlutil

import (
	"strings"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"https://example.com/a/b/c.html", true},
		{"ftp://example.com", false},
		{"mailto:test@example.com", false},
		{"//example.com/path", false},
		{"/relative/path", false},
		{"not a url", false},
		{"https://", false},
		{"http://", false},
	}

	for _, test := range tests {
		if got := IsValid(test.input); got != test.expected {
			t.Errorf("IsValid(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestIsValidRejectsOverlongURL(t *testing.T) {
	long := "https://example.com/" + strings.Repeat("a", MaxLength)
	if IsValid(long) {
		t.Errorf("IsValid should reject URLs longer than %d characters", MaxLength)
	}

	// Exactly at the limit is still valid.
	prefix := "https://example.com/"
	exact := prefix + strings.Repeat("a", MaxLength-len(prefix))
	if !IsValid(exact) {
		t.Error("IsValid should accept a URL of exactly the maximum length")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com/"},
		{"https://example.com/page#section", "https://example.com/page"},
		{"https://example.com/page?q=1#top", "https://example.com/page?q=1"},
		{"https://example.com/a/b", "https://example.com/a/b"},
		{"not a url", "not a url"},
		{"ftp://example.com/file", "ftp://example.com/file"},
		{"", ""},
	}

	for _, test := range tests {
		if got := Normalize(test.input); got != test.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"https://example.com",
		"https://example.com/page#frag",
		"http://example.com/a?b=c",
		"garbage",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestResolve(t *testing.T) {
	base := "https://example.com/docs/guide/"

	tests := []struct {
		input    string
		base     string
		expected string
	}{
		// Absolute URLs pass through regardless of base.
		{"https://other.com/x", base, "https://other.com/x"},
		{"https://other.com/x", "", "https://other.com/x"},
		{"/about", base, "https://example.com/about"},
		{"page.html", base, "https://example.com/docs/guide/page.html"},
		{"../intro", base, "https://example.com/docs/intro"},
		{"//cdn.example.com/img.png", base, "https://cdn.example.com/img.png"},
		{"?page=2", base, "https://example.com/docs/guide/?page=2"},
		// No usable base leaves the input alone.
		{"/about", "", "/about"},
		{"/about", "not a base", "/about"},
	}

	for _, test := range tests {
		if got := Resolve(test.input, test.base); got != test.expected {
			t.Errorf("Resolve(%q, %q) = %q, expected %q", test.input, test.base, got, test.expected)
		}
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://Example.COM/page", "example.com"},
		{"http://sub.example.com:8080/x", "sub.example.com"},
		{"not a url", ""},
		{"/relative", ""},
	}

	for _, test := range tests {
		if got := ExtractDomain(test.input); got != test.expected {
			t.Errorf("ExtractDomain(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestIsDomainAllowed(t *testing.T) {
	allowed := []string{"example.com", "Trusted.ORG"}

	tests := []struct {
		input    string
		expected bool
	}{
		{"https://example.com/page", true},
		{"https://www.example.com/page", true},
		{"https://trusted.org/x", true},
		{"https://deep.sub.trusted.org/x", true},
		{"https://evil.com/x", false},
		{"https://notexample.com/x", false},
	}

	for _, test := range tests {
		if got := IsDomainAllowed(test.input, allowed); got != test.expected {
			t.Errorf("IsDomainAllowed(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}

	if !IsDomainAllowed("https://anything.net", nil) {
		t.Error("Empty allowlist should permit any URL")
	}
}

func TestHasValidWebExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://example.com/page", true},
		{"https://example.com/", true},
		{"https://example.com/page.html", true},
		{"https://example.com/page.HTML", true},
		{"https://example.com/doc.pdf", true},
		{"https://example.com/feed.rss", true},
		{"https://example.com/archive.zip", false},
		{"https://example.com/image.jpg", false},
		{"https://example.com/run.exe", false},
	}

	for _, test := range tests {
		if got := HasValidWebExtension(test.input); got != test.expected {
			t.Errorf("HasValidWebExtension(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestIsAccessible(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://example.com/page", true},
		{"https://8.8.8.8/", true},
		{"http://localhost/page", false},
		{"http://app.localhost/page", false},
		{"http://127.0.0.1/page", false},
		{"http://10.0.0.5/page", false},
		{"http://172.16.1.1/page", false},
		{"http://192.168.1.10/page", false},
		{"not a url", false},
	}

	for _, test := range tests {
		if got := IsAccessible(test.input); got != test.expected {
			t.Errorf("IsAccessible(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}
