package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePageSet(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pages.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write page set: %v", err)
	}
	return path
}

func TestLoaderRun(t *testing.T) {
	path := writePageSet(t, `
base_url: https://example.com
options:
  pretty: true
pages:
  - url: /
    changefreq: daily
    priority: 1.0
  - url: /about
    lastmod: 2023-07-01
  - url: /gallery
    images:
      - url: https://example.com/img/a.png
        title: A
`)

	doc, idx, err := NewLoader(path, "").Run()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if idx != nil {
		t.Error("No sitemap references listed, index should be nil")
	}

	if doc.Count() != 3 {
		t.Fatalf("Expected 3 records, got %d", doc.Count())
	}

	records := doc.Records()
	if records[0].Loc != "https://example.com/" {
		t.Errorf("Relative URL should resolve against base_url, got %q", records[0].Loc)
	}
	if records[1].LastMod != "2023-07-01T00:00:00Z" {
		t.Errorf("lastmod should be coerced to canonical form, got %q", records[1].LastMod)
	}
	if len(records[2].Images) != 1 || records[2].Images[0].Title != "A" {
		t.Errorf("Image metadata should carry over, got %+v", records[2].Images)
	}

	out, err := doc.ToXML()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(out, "\n  <url>") {
		t.Error("Configured pretty option should apply to rendering")
	}
}

func TestLoaderRunWithSitemapIndex(t *testing.T) {
	path := writePageSet(t, `
base_url: https://example.com
sitemaps:
  - url: /sitemaps/part-1.xml
    lastmod: 2023-07-01
  - url: /sitemaps/part-2.xml
`)

	_, idx, err := NewLoader(path, "").Run()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if idx == nil {
		t.Fatal("Sitemap references listed, expected an index")
	}
	if idx.Count() != 2 {
		t.Errorf("Expected 2 references, got %d", idx.Count())
	}
	if got := idx.Records()[0].Loc; got != "https://example.com/sitemaps/part-1.xml" {
		t.Errorf("Reference should resolve against base_url, got %q", got)
	}
}

func TestLoaderBaseURLOverride(t *testing.T) {
	path := writePageSet(t, `
base_url: https://staging.example.com
pages:
  - url: /about
`)

	doc, _, err := NewLoader(path, "https://www.example.com").Run()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := doc.Records()[0].Loc; got != "https://www.example.com/about" {
		t.Errorf("Override base URL should win, got %q", got)
	}
}

func TestLoaderRejectsInvalidPage(t *testing.T) {
	path := writePageSet(t, `
pages:
  - url: "not a url"
`)

	_, _, err := NewLoader(path, "").Run()
	if err == nil {
		t.Fatal("Expected a validation error for an invalid page")
	}
	if !strings.Contains(err.Error(), "page 0") {
		t.Errorf("Error should name the failing page, got: %v", err)
	}
}

func TestLoaderRejectsMissingFile(t *testing.T) {
	if _, _, err := NewLoader("/nonexistent/pages.yml", "").Run(); err == nil {
		t.Fatal("Expected an error for a missing page set file")
	}
}

func TestLoaderRejectsMalformedYAML(t *testing.T) {
	path := writePageSet(t, "pages: [\n")

	if _, _, err := NewLoader(path, "").Run(); err == nil {
		t.Fatal("Expected an error for malformed YAML")
	}
}

func TestLoaderValidationToggle(t *testing.T) {
	path := writePageSet(t, `
options:
  validate: false
pages:
  - url: "not a url"
`)

	doc, _, err := NewLoader(path, "").Run()
	if err != nil {
		t.Fatalf("Validation disabled, expected no error, got: %v", err)
	}
	if doc.Count() != 1 {
		t.Errorf("Expected the record stored, count is %d", doc.Count())
	}
}
