// Package api serves portfolio content as JSON and the cached images as static files.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	ImageDir       string
	PublicPrefix   string
	RequestTimeout time.Duration
}

func NewRouter(h *Handler, cfg RouterConfig, logger *slog.Logger) *gin.Engine {
	logger = logger.With("component", "api")

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), ErrorMiddleware(logger))

	if cfg.RequestTimeout > 0 {
		router.Use(timeout(cfg.RequestTimeout))
	}

	if cfg.ImageDir != "" && cfg.PublicPrefix != "" {
		router.StaticFS(cfg.PublicPrefix, hideDotFiles{gin.Dir(cfg.ImageDir, false)})
	}

	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.GET("/profile", h.GetProfile)
		api.GET("/experiences", h.ListExperiences)
		api.GET("/blog", h.ListBlogPosts)

		projects := api.Group("/projects")
		{
			projects.GET("", h.ListProjects)
			projects.GET("/:slug", h.GetProject)
		}

		if h.syncState != nil {
			api.GET("/sync-state", h.ListSyncStates)
			api.GET("/sync-state/:category", h.GetSyncState)
		}
	}

	return router
}

// hideDotFiles keeps in-progress downloads and other dot entries unservable.
type hideDotFiles struct {
	http.FileSystem
}

func (fs hideDotFiles) Open(name string) (http.File, error) {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return nil, os.ErrNotExist
		}
	}
	return fs.FileSystem.Open(name)
}

func timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
