package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okarpov/sitemap-kit/app/sitemap"
)

func NewHandler(doc *sitemap.Document, index *sitemap.Index) *Handler {
	return &Handler{
		doc:   doc,
		index: index,
	}
}

func (h *Handler) GetSitemap(c *gin.Context) {
	var opts []sitemap.RenderOption
	if pretty, ok := c.GetQuery("pretty"); ok {
		opts = append(opts, sitemap.WithPretty(pretty != "0" && pretty != "false"))
	}

	out, err := h.doc.ToXML(opts...)
	if err != nil {
		slog.Error("Sitemap rendering error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Sitemap-Urls", strconv.Itoa(h.doc.Count()))

	c.String(http.StatusOK, out)
}

func (h *Handler) GetSitemapText(c *gin.Context) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("X-Sitemap-Urls", strconv.Itoa(h.doc.Count()))

	c.String(http.StatusOK, h.doc.ToPlainText())
}

func (h *Handler) GetSitemapIndex(c *gin.Context) {
	if h.index == nil {
		c.Status(http.StatusNotFound)
		return
	}

	out, err := h.index.ToXML()
	if err != nil {
		slog.Error("Sitemap index rendering error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Sitemap-Count", strconv.Itoa(h.index.Count()))

	c.String(http.StatusOK, out)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"urls":      h.doc.Count(),
	}

	if h.index != nil {
		health["sitemaps"] = h.index.Count()
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := h.doc.Stats()

	c.JSON(http.StatusOK, gin.H{
		"total":             stats.Total,
		"with_images":       stats.WithImages,
		"with_videos":       stats.WithVideos,
		"with_translations": stats.WithTranslations,
		"with_alternates":   stats.WithAlternates,
		"with_news":         stats.WithNews,
		"total_images":      stats.TotalImages,
		"total_videos":      stats.TotalVideos,
		"estimated_bytes":   stats.EstimatedBytes,
		"should_split":      h.doc.ShouldSplit(),
	})
}
