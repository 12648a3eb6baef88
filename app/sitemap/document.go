package sitemap

import (
	"fmt"

	"github.com/okarpov/sitemap-kit/app/dateutil"
	"github.com/okarpov/sitemap-kit/app/urlutil"
)

// Default thresholds from the sitemap protocol.
const (
	DefaultMaxItems    = 50000
	DefaultMaxSitemaps = 50000
)

// Options configures a Document or Index at construction time.
type Options struct {
	// Escaping controls XML metacharacter escaping of free-text content.
	Escaping bool
	// Validate runs the validation rules on every inserted record.
	Validate bool
	// MaxItems is the advisory ShouldSplit threshold for a Document.
	MaxItems int
	// BaseURL resolves relative locations passed to Add.
	BaseURL string
	// Pretty enables two-space indented output. Off by default for both
	// Document and Index.
	Pretty bool
	// Stylesheet adds an xml-stylesheet processing instruction when set.
	Stylesheet string
	// Namespaces declares extra xmlns: attributes on the root element of a
	// Document. Well-known prefixes (image, video, xhtml, news) cannot be
	// overridden.
	Namespaces map[string]string
	// MaxSitemaps is the hard AddSitemap cap for an Index.
	MaxSitemaps int
}

// DefaultOptions returns the options a zero-config caller gets: escaping and
// validation on, protocol-default thresholds, compact output.
func DefaultOptions() Options {
	return Options{
		Escaping:    true,
		Validate:    true,
		MaxItems:    DefaultMaxItems,
		MaxSitemaps: DefaultMaxSitemaps,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxItems <= 0 {
		o.MaxItems = DefaultMaxItems
	}
	if o.MaxSitemaps <= 0 {
		o.MaxSitemaps = DefaultMaxSitemaps
	}
	return o
}

// Stats summarizes a document's contents. EstimatedBytes is a heuristic used
// by ShouldSplit advisories, not an exact serialized size.
type Stats struct {
	Total            int
	WithImages       int
	WithVideos       int
	WithTranslations int
	WithAlternates   int
	WithNews         int
	TotalImages      int
	TotalVideos      int
	EstimatedBytes   int
}

// Size estimation weights: a flat document overhead, a flat per-record
// overhead, and per-field contributions.
const (
	estDocumentBase     = 250
	estRecordBase       = 50
	estTitleBase        = 15
	estLastModBytes     = 30
	estImageBytes       = 200
	estVideoBytes       = 500
	estTranslationBytes = 100
	estAlternateBytes   = 100
	estNewsBytes        = 300
)

// Document owns an ordered collection of records and its configuration.
// Insertion order is output order; records are never reordered. A Document
// is not safe for concurrent mutation; independent instances share nothing.
type Document struct {
	opts    Options
	records []Record
}

// NewDocument creates an empty document. Zero count thresholds fall back to
// the protocol defaults; boolean options are taken as given, so start from
// DefaultOptions unless escaping or validation should be off.
func NewDocument(opts Options) *Document {
	return &Document{opts: opts.withDefaults()}
}

// Options returns the document's configuration.
func (d *Document) Options() Options {
	return d.opts
}

// Add builds a record from positional fields and stores it. A relative url
// is resolved against the configured base URL; lastMod accepts a time.Time
// or a date string and is coerced to the canonical timestamp form. With
// validation enabled, a record failing any rule is rejected before storage
// and the error carries every violation.
func (d *Document) Add(url string, lastMod any, priority *float64, freq ChangeFreq, extras *Extras) error {
	rec := Record{
		Loc:        url,
		Priority:   priority,
		ChangeFreq: freq,
	}

	if lastMod != nil {
		formatted, err := dateutil.Format(lastMod)
		if err != nil {
			return fmt.Errorf("add %q: %w", url, err)
		}
		rec.LastMod = formatted
	}

	if extras != nil {
		rec.Title = extras.Title
		rec.Images = extras.Images
		rec.Videos = extras.Videos
		rec.Translations = extras.Translations
		rec.Alternates = extras.Alternates
		rec.News = extras.News
	}

	return d.AddRecord(rec)
}

// AddRecord runs a pre-built record through the same pipeline: base URL
// resolution, then validation when enabled, then append. The record is
// copied on storage so the caller's value cannot alias internal state.
func (d *Document) AddRecord(rec Record) error {
	rec = rec.clone()
	rec.Loc = urlutil.Resolve(rec.Loc, d.opts.BaseURL)

	if d.opts.Validate {
		if errs := ValidateRecord(rec); len(errs) > 0 {
			return fmt.Errorf("record %q failed validation: %w", rec.Loc, errs)
		}
	}

	d.records = append(d.records, rec)
	return nil
}

// AddRecords inserts records sequentially. The first invalid record aborts
// the batch with an error naming its location; records validated before it
// remain stored.
func (d *Document) AddRecords(recs []Record) error {
	for _, rec := range recs {
		if err := d.AddRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

// Records returns a defensive copy of the stored records in insertion order.
// Mutating the returned slice or its contents never affects the document.
func (d *Document) Records() []Record {
	out := make([]Record, len(d.records))
	for i, rec := range d.records {
		out[i] = rec.clone()
	}
	return out
}

// Count returns the number of stored records.
func (d *Document) Count() int {
	return len(d.records)
}

// Clear removes every stored record.
func (d *Document) Clear() {
	d.records = nil
}

// RemoveWhere drops every record matching the predicate, preserving the
// relative order of the kept ones, and returns how many were removed.
func (d *Document) RemoveWhere(match func(Record) bool) int {
	kept := d.records[:0]
	removed := 0
	for _, rec := range d.records {
		if match(rec) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	d.records = kept
	return removed
}

// Stats scans the collection once and returns counts, sums and the
// heuristic byte-size estimate.
func (d *Document) Stats() Stats {
	s := Stats{
		Total:          len(d.records),
		EstimatedBytes: estDocumentBase,
	}

	for _, rec := range d.records {
		size := estRecordBase + len(rec.Loc)

		if rec.Title != "" {
			size += estTitleBase + len(rec.Title)
		}
		if rec.LastMod != "" {
			size += estLastModBytes
		}

		if len(rec.Images) > 0 {
			s.WithImages++
			s.TotalImages += len(rec.Images)
			size += estImageBytes * len(rec.Images)
		}
		if len(rec.Videos) > 0 {
			s.WithVideos++
			s.TotalVideos += len(rec.Videos)
			size += estVideoBytes * len(rec.Videos)
		}
		if len(rec.Translations) > 0 {
			s.WithTranslations++
			size += estTranslationBytes * len(rec.Translations)
		}
		if len(rec.Alternates) > 0 {
			s.WithAlternates++
			size += estAlternateBytes * len(rec.Alternates)
		}
		if rec.News != nil {
			s.WithNews++
			size += estNewsBytes
		}

		s.EstimatedBytes += size
	}

	return s
}

// ShouldSplit reports whether the record count has reached the configured
// maximum. Advisory only; true at exactly MaxItems records.
func (d *Document) ShouldSplit() bool {
	return len(d.records) >= d.opts.MaxItems
}

// ValidateAll re-runs the validation rules over every stored record,
// regardless of whether validation was enabled at insertion time. Field
// paths are prefixed with the record index, e.g. "records[3].loc".
func (d *Document) ValidateAll() ValidationErrors {
	var all ValidationErrors
	for i, rec := range d.records {
		if errs := ValidateRecord(rec); len(errs) > 0 {
			all = append(all, errs.withPrefix(fmt.Sprintf("records[%d].", i))...)
		}
	}
	return all
}
