package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/microx-portfolio/internal/config"
	"github.com/Zachkp/microx-portfolio/internal/content"
	"github.com/Zachkp/microx-portfolio/internal/sheet"
)

// newRouter builds the site. store may be nil when the sheet is disabled, in
// which case neither the exec endpoint nor the admin pages are mounted.
func newRouter(cfg *config.Config, store *sheet.Store, log *zap.Logger) (*gin.Engine, error) {
	page, err := content.Build(siteCopy, cfg.Frontend)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(requestLogger(log.Named("http")), gin.Recovery())
	r.LoadHTMLGlob(cfg.Server.TemplateGlob)

	r.Static("/images", cfg.Server.ImagesDir)
	r.Static("/static", cfg.Server.StaticDir)

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", page)
	})

	if store == nil {
		return r, nil
	}

	store.Register(r)

	a, err := newAdmin(cfg.Admin, store, log.Named("admin"))
	if err != nil {
		return nil, err
	}
	a.register(r)

	return r, nil
}

// requestLogger logs one line per request, skipping assets.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if c.FullPath() == "/static/*filepath" || c.FullPath() == "/images/*filepath" {
			return
		}

		log.Debug("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
