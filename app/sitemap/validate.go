package sitemap

import (
	"fmt"
	"math"

	"golang.org/x/text/language"

	"github.com/okarpov/sitemap-kit/app/dateutil"
	"github.com/okarpov/sitemap-kit/app/urlutil"
)

// ValidateRecord inspects one record and collects every applicable rule
// violation. It never mutates the record and never stops at the first
// problem. An empty result means the record is valid.
func ValidateRecord(r Record) ValidationErrors {
	var errs ValidationErrors

	if r.Loc == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   "loc",
			Message: "location is required",
		})
	} else if !urlutil.IsValid(r.Loc) {
		errs = append(errs, ValidationError{
			Kind:    KindURL,
			Field:   "loc",
			Message: "location is not a valid absolute http(s) URL",
			Value:   r.Loc,
		})
	}

	if r.Priority != nil {
		p := *r.Priority
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0.0 || p > 1.0 {
			errs = append(errs, ValidationError{
				Kind:    KindRange,
				Field:   "priority",
				Message: "priority must be a finite number between 0.0 and 1.0",
				Value:   fmt.Sprintf("%v", p),
			})
		}
	}

	if r.LastMod != "" {
		if !dateutil.IsValidDate(r.LastMod) {
			errs = append(errs, ValidationError{
				Kind:    KindDate,
				Field:   "lastmod",
				Message: "last modification date is not parseable",
				Value:   r.LastMod,
			})
		} else if !dateutil.IsValidLastMod(r.LastMod) {
			errs = append(errs, ValidationError{
				Kind:    KindDate,
				Field:   "lastmod",
				Message: "last modification date must not be in the future",
				Value:   r.LastMod,
			})
		}
	}

	if r.ChangeFreq != "" && !r.ChangeFreq.Valid() {
		errs = append(errs, ValidationError{
			Kind:    KindEnum,
			Field:   "changefreq",
			Message: "change frequency must be one of always, hourly, daily, weekly, monthly, yearly, never",
			Value:   string(r.ChangeFreq),
		})
	}

	for i, img := range r.Images {
		errs = append(errs, validateImage(i, img)...)
	}

	for i, video := range r.Videos {
		errs = append(errs, validateVideo(i, video)...)
	}

	for i, tr := range r.Translations {
		errs = append(errs, validateTranslation(i, tr)...)
	}

	for i, alt := range r.Alternates {
		errs = append(errs, validateAlternate(i, alt)...)
	}

	if r.News != nil {
		errs = append(errs, validateNews(*r.News)...)
	}

	return errs
}

func validateImage(i int, img Image) ValidationErrors {
	var errs ValidationErrors

	if img.URL == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   fmt.Sprintf("images[%d].url", i),
			Message: "image URL is required",
		})
	} else if !urlutil.IsValid(img.URL) {
		errs = append(errs, ValidationError{
			Kind:    KindURL,
			Field:   fmt.Sprintf("images[%d].url", i),
			Message: "image URL is not a valid absolute http(s) URL",
			Value:   img.URL,
		})
	}

	return errs
}

func validateVideo(i int, v Video) ValidationErrors {
	var errs ValidationErrors

	if v.Title == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   fmt.Sprintf("videos[%d].title", i),
			Message: "video title is required",
		})
	}

	if v.Description == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   fmt.Sprintf("videos[%d].description", i),
			Message: "video description is required",
		})
	}

	if v.ThumbnailURL == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   fmt.Sprintf("videos[%d].thumbnail", i),
			Message: "video thumbnail URL is required",
		})
	} else if !urlutil.IsValid(v.ThumbnailURL) {
		errs = append(errs, ValidationError{
			Kind:    KindURL,
			Field:   fmt.Sprintf("videos[%d].thumbnail", i),
			Message: "video thumbnail URL is not a valid absolute http(s) URL",
			Value:   v.ThumbnailURL,
		})
	}

	if v.Duration != nil && *v.Duration < 0 {
		errs = append(errs, ValidationError{
			Kind:    KindRange,
			Field:   fmt.Sprintf("videos[%d].duration", i),
			Message: "video duration must be a non-negative number of seconds",
			Value:   fmt.Sprintf("%d", *v.Duration),
		})
	}

	if v.Rating != nil && (math.IsNaN(*v.Rating) || *v.Rating < 0.0 || *v.Rating > 5.0) {
		errs = append(errs, ValidationError{
			Kind:    KindRange,
			Field:   fmt.Sprintf("videos[%d].rating", i),
			Message: "video rating must be between 0.0 and 5.0",
			Value:   fmt.Sprintf("%v", *v.Rating),
		})
	}

	return errs
}

func validateTranslation(i int, tr Translation) ValidationErrors {
	var errs ValidationErrors

	if tr.Language == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   fmt.Sprintf("translations[%d].language", i),
			Message: "translation language is required",
		})
	} else if !isWellFormedLanguage(tr.Language) {
		errs = append(errs, ValidationError{
			Kind:    KindLanguage,
			Field:   fmt.Sprintf("translations[%d].language", i),
			Message: "translation language is not a well-formed BCP 47 tag",
			Value:   tr.Language,
		})
	}

	if tr.URL == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   fmt.Sprintf("translations[%d].url", i),
			Message: "translation URL is required",
		})
	} else if !urlutil.IsValid(tr.URL) {
		errs = append(errs, ValidationError{
			Kind:    KindURL,
			Field:   fmt.Sprintf("translations[%d].url", i),
			Message: "translation URL is not a valid absolute http(s) URL",
			Value:   tr.URL,
		})
	}

	return errs
}

func validateAlternate(i int, alt Alternate) ValidationErrors {
	var errs ValidationErrors

	if alt.URL == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   fmt.Sprintf("alternates[%d].url", i),
			Message: "alternate URL is required",
		})
	} else if !urlutil.IsValid(alt.URL) {
		errs = append(errs, ValidationError{
			Kind:    KindURL,
			Field:   fmt.Sprintf("alternates[%d].url", i),
			Message: "alternate URL is not a valid absolute http(s) URL",
			Value:   alt.URL,
		})
	}

	return errs
}

func validateNews(n News) ValidationErrors {
	var errs ValidationErrors

	if n.SiteName == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   "news.siteName",
			Message: "news site name is required",
		})
	}

	if n.Language == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   "news.language",
			Message: "news language is required",
		})
	} else if !isWellFormedLanguage(n.Language) {
		errs = append(errs, ValidationError{
			Kind:    KindLanguage,
			Field:   "news.language",
			Message: "news language is not a well-formed BCP 47 tag",
			Value:   n.Language,
		})
	}

	if n.PublicationDate == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   "news.publicationDate",
			Message: "news publication date is required",
		})
	} else if !dateutil.IsValidDate(n.PublicationDate) {
		// Future publication dates are allowed, unlike lastmod.
		errs = append(errs, ValidationError{
			Kind:    KindDate,
			Field:   "news.publicationDate",
			Message: "news publication date is not parseable",
			Value:   n.PublicationDate,
		})
	}

	return errs
}

// ValidateIndexRecord applies the simpler index rule set: location required
// and valid, last modification optional but parseable when present.
func ValidateIndexRecord(r IndexRecord) ValidationErrors {
	var errs ValidationErrors

	if r.Loc == "" {
		errs = append(errs, ValidationError{
			Kind:    KindRequired,
			Field:   "loc",
			Message: "location is required",
		})
	} else if !urlutil.IsValid(r.Loc) {
		errs = append(errs, ValidationError{
			Kind:    KindURL,
			Field:   "loc",
			Message: "location is not a valid absolute http(s) URL",
			Value:   r.Loc,
		})
	}

	if r.LastMod != "" && !dateutil.IsValidDate(r.LastMod) {
		errs = append(errs, ValidationError{
			Kind:    KindDate,
			Field:   "lastmod",
			Message: "last modification date is not parseable",
			Value:   r.LastMod,
		})
	}

	return errs
}

func isWellFormedLanguage(tag string) bool {
	_, err := language.Parse(tag)
	return err == nil
}
