package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
)

const (
	nsSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	nsImage   = "http://www.google.com/schemas/sitemap-image/1.1"
	nsVideo   = "http://www.google.com/schemas/sitemap-video/1.1"
	nsXHTML   = "http://www.w3.org/1999/xhtml"
	nsNews    = "http://www.google.com/schemas/sitemap-news/0.9"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

// Prefixes that Options.Namespaces may not override.
var reservedPrefixes = map[string]bool{
	"":      true,
	"xmlns": true,
	"image": true,
	"video": true,
	"xhtml": true,
	"news":  true,
}

// RenderOption overrides pretty/stylesheet settings for a single render call
// without mutating the stored configuration.
type RenderOption func(*renderConfig)

type renderConfig struct {
	pretty     bool
	stylesheet string
}

// WithPretty toggles two-space indented output for one call.
func WithPretty(pretty bool) RenderOption {
	return func(rc *renderConfig) {
		rc.pretty = pretty
	}
}

// WithStylesheet sets the xml-stylesheet reference for one call.
func WithStylesheet(href string) RenderOption {
	return func(rc *renderConfig) {
		rc.stylesheet = href
	}
}

// Render dispatches by format tag. Only "xml" is implemented; every other
// format fails with ErrNotImplemented naming the request.
func (d *Document) Render(format string, opts ...RenderOption) (string, error) {
	switch strings.ToLower(format) {
	case "xml":
		return d.ToXML(opts...)
	default:
		return "", fmt.Errorf("render format %q: %w", format, ErrNotImplemented)
	}
}

// ToHTML is declared in the contract but intentionally not built.
func (d *Document) ToHTML() (string, error) {
	return "", fmt.Errorf("html renderer: %w", ErrNotImplemented)
}

// ToXML serializes the collection into the sitemap urlset grammar in a
// single pass over the stored records.
func (d *Document) ToXML(opts ...RenderOption) (string, error) {
	rc := renderConfig{pretty: d.opts.Pretty, stylesheet: d.opts.Stylesheet}
	for _, opt := range opts {
		opt(&rc)
	}

	w := newXMLWriter(rc.pretty, d.opts.Escaping)
	w.declaration(rc.stylesheet)

	w.open(d.rootElement())
	for _, rec := range d.records {
		d.writeRecord(w, rec)
	}
	w.close("urlset")

	return w.String(), nil
}

// rootElement opens urlset with the mandatory namespace, the extension
// namespaces actually used by at least one record, and any custom
// declarations from configuration.
func (d *Document) rootElement() string {
	var hasImage, hasVideo, hasLink, hasNews bool
	for _, rec := range d.records {
		if len(rec.Images) > 0 {
			hasImage = true
		}
		if len(rec.Videos) > 0 {
			hasVideo = true
		}
		if len(rec.Translations) > 0 || len(rec.Alternates) > 0 {
			hasLink = true
		}
		if rec.News != nil {
			hasNews = true
		}
	}

	var b strings.Builder
	b.WriteString(`<urlset xmlns="` + nsSitemap + `"`)
	if hasImage {
		b.WriteString(` xmlns:image="` + nsImage + `"`)
	}
	if hasVideo {
		b.WriteString(` xmlns:video="` + nsVideo + `"`)
	}
	if hasLink {
		b.WriteString(` xmlns:xhtml="` + nsXHTML + `"`)
	}
	if hasNews {
		b.WriteString(` xmlns:news="` + nsNews + `"`)
	}

	if len(d.opts.Namespaces) > 0 {
		prefixes := make([]string, 0, len(d.opts.Namespaces))
		for prefix := range d.opts.Namespaces {
			if reservedPrefixes[prefix] {
				continue
			}
			prefixes = append(prefixes, prefix)
		}
		sort.Strings(prefixes)
		for _, prefix := range prefixes {
			b.WriteString(fmt.Sprintf(` xmlns:%s="%s"`, prefix, html.EscapeString(d.opts.Namespaces[prefix])))
		}
	}

	b.WriteString(">")
	return b.String()
}

func (d *Document) writeRecord(w *xmlWriter, rec Record) {
	w.open("<url>")

	w.element("loc", rec.Loc)
	if rec.LastMod != "" {
		w.element("lastmod", rec.LastMod)
	}
	if rec.ChangeFreq != "" {
		w.element("changefreq", string(rec.ChangeFreq))
	}
	if rec.Priority != nil {
		// Printed verbatim, never reformatted.
		w.element("priority", strconv.FormatFloat(*rec.Priority, 'f', -1, 64))
	}

	for _, img := range rec.Images {
		w.open("<image:image>")
		w.element("image:loc", img.URL)
		if img.Title != "" {
			w.element("image:title", img.Title)
		}
		if img.Caption != "" {
			w.element("image:caption", img.Caption)
		}
		w.close("image:image")
	}

	for _, video := range rec.Videos {
		w.open("<video:video>")
		w.element("video:thumbnail_loc", video.ThumbnailURL)
		// Video text commonly carries punctuation, so it rides in CDATA
		// instead of entity escaping.
		w.cdata("video:title", video.Title)
		w.cdata("video:description", video.Description)
		if video.Duration != nil {
			w.element("video:duration", strconv.Itoa(*video.Duration))
		}
		w.close("video:video")
	}

	for _, tr := range rec.Translations {
		w.selfClosing(fmt.Sprintf(`<xhtml:link rel="alternate" hreflang="%s" href="%s"/>`,
			w.attr(tr.Language), w.attr(tr.URL)))
	}

	for _, alt := range rec.Alternates {
		if alt.Media != "" {
			w.selfClosing(fmt.Sprintf(`<xhtml:link rel="alternate" media="%s" href="%s"/>`,
				w.attr(alt.Media), w.attr(alt.URL)))
		} else {
			w.selfClosing(fmt.Sprintf(`<xhtml:link rel="alternate" href="%s"/>`, w.attr(alt.URL)))
		}
	}

	if rec.News != nil {
		w.open("<news:news>")
		w.open("<news:publication>")
		w.element("news:name", rec.News.SiteName)
		w.element("news:language", rec.News.Language)
		w.close("news:publication")
		w.element("news:publication_date", rec.News.PublicationDate)
		if rec.News.Title != "" {
			w.element("news:title", rec.News.Title)
		}
		w.close("news:news")
	}

	w.close("url")
}

// ToPlainText renders one location per line in store order.
func (d *Document) ToPlainText() string {
	var b strings.Builder
	for _, rec := range d.records {
		b.WriteString(rec.Loc)
		b.WriteByte('\n')
	}
	return b.String()
}

// xmlWriter accumulates output, handling indentation and the escaping
// toggle. Compact mode emits sibling tags with no whitespace between them.
type xmlWriter struct {
	buf    bytes.Buffer
	pretty bool
	escape bool
	depth  int
}

func newXMLWriter(pretty, escape bool) *xmlWriter {
	return &xmlWriter{pretty: pretty, escape: escape}
}

func (w *xmlWriter) declaration(stylesheet string) {
	w.buf.WriteString(xmlDeclaration)
	w.buf.WriteByte('\n')
	if stylesheet != "" {
		w.buf.WriteString(fmt.Sprintf(`<?xml-stylesheet type="text/xsl" href="%s"?>`, w.attr(stylesheet)))
		w.buf.WriteByte('\n')
	}
}

// open writes an opening tag (markup includes the surrounding angle
// brackets and any attributes) and descends one level.
func (w *xmlWriter) open(markup string) {
	w.indent()
	w.buf.WriteString(markup)
	w.newline()
	w.depth++
}

func (w *xmlWriter) close(tag string) {
	w.depth--
	w.indent()
	w.buf.WriteString("</" + tag + ">")
	w.newline()
}

func (w *xmlWriter) element(tag, content string) {
	w.indent()
	w.buf.WriteString("<" + tag + ">")
	w.text(content)
	w.buf.WriteString("</" + tag + ">")
	w.newline()
}

func (w *xmlWriter) cdata(tag, content string) {
	w.indent()
	w.buf.WriteString("<" + tag + "><![CDATA[")
	// A literal "]]>" in the content would terminate the section early, so
	// split it across two sections.
	w.buf.WriteString(strings.ReplaceAll(content, "]]>", "]]]]><![CDATA[>"))
	w.buf.WriteString("]]></" + tag + ">")
	w.newline()
}

func (w *xmlWriter) selfClosing(markup string) {
	w.indent()
	w.buf.WriteString(markup)
	w.newline()
}

func (w *xmlWriter) text(s string) {
	if !w.escape {
		w.buf.WriteString(s)
		return
	}
	xml.EscapeText(&w.buf, []byte(s))
}

func (w *xmlWriter) attr(s string) string {
	if !w.escape {
		return s
	}
	return html.EscapeString(s)
}

func (w *xmlWriter) indent() {
	if !w.pretty {
		return
	}
	for i := 0; i < w.depth; i++ {
		w.buf.WriteString("  ")
	}
}

func (w *xmlWriter) newline() {
	if w.pretty {
		w.buf.WriteByte('\n')
	}
}

func (w *xmlWriter) String() string {
	return w.buf.String()
}
