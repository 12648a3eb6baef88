package sitemap

import (
	"fmt"
	"strings"

	"github.com/okarpov/sitemap-kit/app/dateutil"
	"github.com/okarpov/sitemap-kit/app/urlutil"
)

// Index owns an ordered collection of sitemap-file references and renders
// the sitemapindex grammar. The MaxSitemaps threshold doubles as the
// advisory ShouldSplit signal and the hard cap AddSitemap enforces.
type Index struct {
	opts    Options
	records []IndexRecord
}

// NewIndex creates an empty sitemap index.
func NewIndex(opts Options) *Index {
	return &Index{opts: opts.withDefaults()}
}

// Options returns the index's configuration.
func (x *Index) Options() Options {
	return x.opts
}

// AddSitemap stores one sitemap reference. It fails with ErrLimitExceeded
// once the configured maximum is reached, and with a validation error when
// validation is enabled and the reference is malformed. lastMod may be nil,
// a time.Time or a date string.
func (x *Index) AddSitemap(loc string, lastMod any) error {
	if len(x.records) >= x.opts.MaxSitemaps {
		return fmt.Errorf("cannot add %q, index holds %d sitemaps: %w", loc, len(x.records), ErrLimitExceeded)
	}

	rec := IndexRecord{Loc: urlutil.Resolve(loc, x.opts.BaseURL)}

	if lastMod != nil {
		formatted, err := dateutil.Format(lastMod)
		if err != nil {
			return fmt.Errorf("add sitemap %q: %w", loc, err)
		}
		rec.LastMod = formatted
	}

	if x.opts.Validate {
		if errs := ValidateIndexRecord(rec); len(errs) > 0 {
			return fmt.Errorf("sitemap reference %q failed validation: %w", rec.Loc, errs)
		}
	}

	x.records = append(x.records, rec)
	return nil
}

// Records returns a copy of the stored references in insertion order.
func (x *Index) Records() []IndexRecord {
	return append([]IndexRecord(nil), x.records...)
}

// Count returns the number of stored references.
func (x *Index) Count() int {
	return len(x.records)
}

// Clear removes every stored reference.
func (x *Index) Clear() {
	x.records = nil
}

// ShouldSplit reports whether the reference count has reached the configured
// maximum. Advisory, unlike the hard cap AddSitemap enforces; true at
// exactly MaxSitemaps references.
func (x *Index) ShouldSplit() bool {
	return len(x.records) >= x.opts.MaxSitemaps
}

// Render dispatches by format tag; only "xml" is implemented.
func (x *Index) Render(format string, opts ...RenderOption) (string, error) {
	switch strings.ToLower(format) {
	case "xml":
		return x.ToXML(opts...)
	default:
		return "", fmt.Errorf("render format %q: %w", format, ErrNotImplemented)
	}
}

// ToXML serializes the references into the sitemapindex grammar. Index
// entries carry no media, so the root declares only the mandatory namespace.
func (x *Index) ToXML(opts ...RenderOption) (string, error) {
	rc := renderConfig{pretty: x.opts.Pretty, stylesheet: x.opts.Stylesheet}
	for _, opt := range opts {
		opt(&rc)
	}

	w := newXMLWriter(rc.pretty, x.opts.Escaping)
	w.declaration(rc.stylesheet)

	w.open(`<sitemapindex xmlns="` + nsSitemap + `">`)
	for _, rec := range x.records {
		w.open("<sitemap>")
		w.element("loc", rec.Loc)
		if rec.LastMod != "" {
			w.element("lastmod", rec.LastMod)
		}
		w.close("sitemap")
	}
	w.close("sitemapindex")

	return w.String(), nil
}
