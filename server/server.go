package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/lightsout/logging"
	"github.com/they4kman/lightsout/portfolio"
)

const shutdownTimeout = 10 * time.Second

type Options struct {
	Port      int
	Store     *portfolio.Store
	PublicDir string
}

type Server struct {
	options Options
	router  *gin.Engine
	metrics *metrics
}

func New(options Options) *Server {
	server := &Server{
		options: options,
		router:  gin.New(),
		metrics: newMetrics(),
	}

	server.router.Use(gin.Recovery(), requestLogger(), server.metrics.middleware(), cors())

	api := server.router.Group("/api")
	api.GET("/projects", server.listProjects)
	api.GET("/categories", server.listCategories)
	api.GET("/tags", server.listTags)

	server.router.GET("/metrics", server.metrics.handler())
	server.router.NoRoute(server.serveStatic)

	return server
}

func (server *Server) Handler() http.Handler {
	return server.router
}

// Run serves until ctx is cancelled, then gives in-flight requests
// shutdownTimeout to finish.
func (server *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", server.options.Port),
		Handler:           server.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logging.Log.WithFields(logrus.Fields{
			"port":   server.options.Port,
			"data":   server.options.Store.Path(),
			"public": server.options.PublicDir,
		}).Info("server started")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logging.Log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logging.Log.Info("server exited")
	return nil
}

// projects never fails: a missing or broken data file is logged and served
// as an empty list.
func (server *Server) projects(c *gin.Context) []portfolio.Project {
	projects, err := server.options.Store.Projects(c.Request.Context())
	if err != nil {
		logging.Log.WithError(err).Error("could not read projects")
		return []portfolio.Project{}
	}
	server.metrics.projects.Set(float64(len(projects)))
	return projects
}

func (server *Server) listProjects(c *gin.Context) {
	projects := server.projects(c)
	projects = portfolio.FilterByCategory(projects, c.Query("category"))
	projects = portfolio.Search(projects, c.Query("q"))
	projects = portfolio.FilterByTag(projects, c.Query("tag"))

	c.JSON(http.StatusOK, projects)
}

func (server *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, portfolio.Categories(server.projects(c)))
}

func (server *Server) listTags(c *gin.Context) {
	c.JSON(http.StatusOK, portfolio.TagCloud(server.projects(c)))
}

// serveStatic serves the file at the request path under PublicDir, and
// index.html for anything else so client-side routes load the site.
func (server *Server) serveStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	root := server.options.PublicDir
	// Clean against "/" so the path cannot climb out of root
	name := filepath.Join(root, filepath.FromSlash(filepath.Clean("/"+c.Request.URL.Path)))
	if stat, err := os.Stat(name); err == nil && stat.IsDir() {
		name = filepath.Join(name, "index.html")
	}
	if stat, err := os.Stat(name); err == nil && stat.Mode().IsRegular() {
		c.File(name)
		return
	}

	index := filepath.Join(root, "index.html")
	if _, err := os.Stat(index); err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}
	c.File(index)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logging.Log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
			"bytes":  c.Writer.Size(),
			"dur":    time.Since(start).Round(time.Millisecond),
		})
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Warn("http")
			return
		}
		entry.Debug("http")
	}
}

// cors lets the site be served from another origin than the API
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type")
			c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
			c.Header("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
