// Package server exposes the task, catalog and organisation API over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Greg-CLD/tcof/internal/app/summary"
	"github.com/Greg-CLD/tcof/internal/app/taskimport"
	"github.com/Greg-CLD/tcof/internal/auth"
	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/storage"
	"github.com/Greg-CLD/tcof/internal/tasksource"
	taskstore "github.com/Greg-CLD/tcof/internal/tasksource/store"
)

// ServerConfig is the configuration for the API server.
type ServerConfig struct {
	ListenAddr string
	Repository storage.Repository
	Catalog    catalog.Source
	Auth       *auth.Service
	Logger     log.Logger
}

func (c *ServerConfig) defaults() error {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}

	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Catalog == nil {
		return fmt.Errorf("catalog source is required")
	}

	if c.Auth == nil {
		return fmt.Errorf("auth service is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Server serves the REST API backed by a repository and the catalog.
type Server struct {
	server   *http.Server
	router   *gin.Engine
	repo     storage.Repository
	catalog  catalog.Source
	tasks    tasksource.Source
	auth     *auth.Service
	summary  *summary.Service
	importer *taskimport.Service
	logger   log.Logger
}

// NewServer creates the API server and wires its routes.
func NewServer(cfg ServerConfig) (*Server, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	tasks, err := taskstore.NewSource(taskstore.SourceConfig{
		Repository: cfg.Repository,
		Logger:     cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create task source: %w", err)
	}

	summarySvc, err := summary.NewService(summary.ServiceConfig{
		Repository: cfg.Repository,
		Catalog:    cfg.Catalog,
		Logger:     cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create summary service: %w", err)
	}

	importSvc, err := taskimport.NewService(taskimport.ServiceConfig{
		Repository: cfg.Repository,
		Logger:     cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create import service: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	s := &Server{
		router:   router,
		repo:     cfg.Repository,
		catalog:  cfg.Catalog,
		tasks:    tasks,
		auth:     cfg.Auth,
		summary:  summarySvc,
		importer: importSvc,
		logger:   cfg.Logger,
	}

	router.Use(gin.Recovery(), s.logMiddleware())

	router.GET("/healthz", s.handleHealthz)

	api := router.Group("/api")
	{
		api.GET("/catalog", s.handleGetCatalog)
		api.POST("/auth/login", s.handleLogin)

		authed := api.Group("", s.authMiddleware())
		{
			authed.POST("/orgs", s.handleCreateOrg)
			authed.GET("/orgs", s.handleListOrgs)
			authed.GET("/orgs/:orgID", s.handleGetOrg)
			authed.PUT("/orgs/:orgID/plan", s.handleUpdateOrgPlan)

			authed.POST("/projects", s.handleCreateProject)
			authed.GET("/projects", s.handleListProjects)
			authed.GET("/projects/:projectID", s.handleGetProject)
			authed.DELETE("/projects/:projectID", s.handleDeleteProject)

			authed.GET("/projects/:projectID/tasks", s.handleListTasks)
			authed.POST("/projects/:projectID/tasks", s.handleCreateTask)
			authed.PUT("/projects/:projectID/tasks/:taskID", s.handleUpdateTask)
			authed.DELETE("/projects/:projectID/tasks/:taskID", s.handleDeleteTask)
			authed.POST("/projects/:projectID/tasks/import", s.handleImportTasks)

			authed.GET("/projects/:projectID/checklist", s.handleChecklist)
			authed.GET("/projects/:projectID/summary", s.handleSummary)
			authed.GET("/projects/:projectID/ratings", s.handleListRatings)
			authed.PUT("/projects/:projectID/ratings/:factorID", s.handleUpsertRating)
			authed.GET("/projects/:projectID/export", s.handleExport)

			admin := authed.Group("/admin", s.adminMiddleware())
			{
				admin.PUT("/factors/:factorID", s.handleSaveFactor)
				admin.DELETE("/factors/:factorID", s.handleDeleteFactor)
				admin.PUT("/heuristics/:heuristicID", s.handleSaveHeuristic)
				admin.DELETE("/heuristics/:heuristicID", s.handleDeleteHeuristic)
				admin.POST("/users", s.handleCreateUser)
			}
		}
	}

	s.server = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	return s, nil
}

// Handler returns the HTTP handler behind the server, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until ctx is cancelled. It performs a
// graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("API server listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("API server error: %w", err)
	case <-ctx.Done():
		s.logger.Infof("shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("API server shutdown error: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
