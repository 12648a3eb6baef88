// Package source loads a YAML page-set file and turns it into a ready
// sitemap document (and, when sitemap references are listed, an index).
package source

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okarpov/sitemap-kit/app/sitemap"
)

type Loader struct {
	path string
	// baseURL overrides the file's base_url when non-empty.
	baseURL string
}

func NewLoader(path, baseURL string) *Loader {
	return &Loader{path: path, baseURL: baseURL}
}

// Run reads and parses the page-set file, builds the document and appends
// every page through the standard add pipeline. The returned index is nil
// when the file lists no sitemap references. Any invalid page fails the
// load with the aggregated validation message.
func (l *Loader) Run() (*sitemap.Document, *sitemap.Index, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read page set: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse page set: %w", err)
	}

	if l.baseURL != "" {
		file.BaseURL = l.baseURL
	}

	opts := buildOptions(file)
	doc := sitemap.NewDocument(opts)

	for i, page := range file.Pages {
		if err := addPage(doc, page); err != nil {
			return nil, nil, fmt.Errorf("page %d: %w", i, err)
		}
	}

	slog.Debug("Page set loaded", "path", l.path, "pages", doc.Count())

	if len(file.Sitemaps) == 0 {
		return doc, nil, nil
	}

	idx := sitemap.NewIndex(opts)
	for i, ref := range file.Sitemaps {
		var lastMod any
		if ref.LastMod != "" {
			lastMod = ref.LastMod
		}
		if err := idx.AddSitemap(ref.URL, lastMod); err != nil {
			return nil, nil, fmt.Errorf("sitemap reference %d: %w", i, err)
		}
	}

	slog.Debug("Sitemap index loaded", "path", l.path, "sitemaps", idx.Count())

	return doc, idx, nil
}

func buildOptions(file File) sitemap.Options {
	opts := sitemap.DefaultOptions()

	if file.Options.Escaping != nil {
		opts.Escaping = *file.Options.Escaping
	}
	if file.Options.Validate != nil {
		opts.Validate = *file.Options.Validate
	}
	if file.Options.MaxItems > 0 {
		opts.MaxItems = file.Options.MaxItems
	}
	if file.Options.MaxSitemaps > 0 {
		opts.MaxSitemaps = file.Options.MaxSitemaps
	}
	opts.BaseURL = file.BaseURL
	opts.Pretty = file.Options.Pretty
	opts.Stylesheet = file.Options.Stylesheet
	opts.Namespaces = file.Options.Namespaces

	return opts
}

func addPage(doc *sitemap.Document, page Page) error {
	var lastMod any
	if page.LastMod != "" {
		lastMod = page.LastMod
	}

	extras := &sitemap.Extras{Title: page.Title}

	for _, img := range page.Images {
		extras.Images = append(extras.Images, sitemap.Image{
			URL:     img.URL,
			Title:   img.Title,
			Caption: img.Caption,
		})
	}
	for _, v := range page.Videos {
		extras.Videos = append(extras.Videos, sitemap.Video{
			Title:        v.Title,
			Description:  v.Description,
			ThumbnailURL: v.ThumbnailURL,
			Duration:     v.Duration,
			Rating:       v.Rating,
		})
	}
	for _, tr := range page.Translations {
		extras.Translations = append(extras.Translations, sitemap.Translation{
			Language: tr.Language,
			URL:      tr.URL,
		})
	}
	for _, alt := range page.Alternates {
		extras.Alternates = append(extras.Alternates, sitemap.Alternate{
			URL:   alt.URL,
			Media: alt.Media,
		})
	}
	if page.News != nil {
		extras.News = &sitemap.News{
			SiteName:        page.News.SiteName,
			Language:        page.News.Language,
			PublicationDate: page.News.PublicationDate,
			Title:           page.News.Title,
		}
	}

	return doc.Add(page.URL, lastMod, page.Priority, sitemap.ChangeFreq(page.ChangeFreq), extras)
}
