package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the HTTP server with all routes configured.
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	r.GET("/sitemap.xml", handler.GetSitemap)
	r.GET("/sitemap.txt", handler.GetSitemapText)
	r.GET("/sitemap-index.xml", handler.GetSitemapIndex)
	r.GET("/health", handler.GetHealth)
	r.GET("/stats", handler.GetStats)

	return r
}
