package api

import (
	"github.com/okarpov/sitemap-kit/app/sitemap"
)

type Handler struct {
	doc   *sitemap.Document
	index *sitemap.Index
}
