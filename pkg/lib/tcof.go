package lib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/checklist"
	"github.com/Greg-CLD/tcof/internal/conventions"
	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/storage"
	"github.com/Greg-CLD/tcof/internal/storage/sqlite"
	"github.com/Greg-CLD/tcof/internal/tasksource"
	taskstore "github.com/Greg-CLD/tcof/internal/tasksource/store"
)

const defaultOrgName = "Personal"

// Config configures the SDK client.
//
// All fields are optional and have sensible defaults. At minimum, an empty
// Config{} will use ~/.tcof/tcof.db for storage and load the success factor
// catalog from ~/.tcof/catalog.yaml.
type Config struct {
	// DBPath is the SQLite database path.
	// Default: ~/.tcof/tcof.db.
	DBPath string

	// DataDir is the base directory for tcof data.
	// Default: ~/.tcof.
	DataDir string

	// CatalogPath is the success factor catalog YAML file.
	// Default: ~/.tcof/catalog.yaml. Ignored when CatalogURL is set.
	CatalogPath string

	// CatalogURL fetches the catalog from a tcof server's public catalog
	// endpoint instead of a local file, e.g.
	// "https://tcof.example.com/api/catalog".
	CatalogURL string

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get user home dir: %w", err)
		}
		c.DataDir = conventions.DataDir(home)
	}

	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, conventions.DBFile)
	}

	if c.CatalogPath == "" {
		c.CatalogPath = filepath.Join(c.DataDir, conventions.CatalogFile)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the main SDK entry point for managing project checklists
// programmatically.
//
// Create a Client with [New] and release its resources with [Client.Close].
// A Client is safe for concurrent use.
type Client struct {
	repo    storage.Repository
	tasks   tasksource.Source
	catalog catalog.Source
	logger  log.Logger
	closeFn func() error
}

// New creates a new SDK client backed by a SQLite database.
//
// The catalog is read fresh on every checklist operation, so edits to the
// catalog file show up without recreating the client.
//
// The caller must call [Client.Close] when done to release the database
// connection. Typically used with defer:
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: cfg.DBPath,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	tasks, err := taskstore.NewSource(taskstore.SourceConfig{
		Repository: repo,
		Logger:     cfg.Logger,
	})
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("could not create task source: %w", err)
	}

	catalogSrc, err := newCatalogSource(cfg)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("could not create catalog source: %w", err)
	}

	return &Client{
		repo:    repo,
		tasks:   tasks,
		catalog: catalogSrc,
		logger:  cfg.Logger,
		closeFn: repo.Close,
	}, nil
}

func newCatalogSource(cfg Config) (catalog.Source, error) {
	if cfg.CatalogURL != "" {
		return catalog.NewHTTPSource(catalog.HTTPSourceConfig{
			URL:    cfg.CatalogURL,
			Logger: cfg.Logger,
		})
	}

	return catalog.NewFileSource(catalog.FileSourceConfig{
		Path:   cfg.CatalogPath,
		Logger: cfg.Logger,
	})
}

// Close releases resources held by the client, including the database
// connection. After Close returns, the client must not be used.
func (c *Client) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}
	return nil
}

// newEngine creates a reconciliation engine scoped to one project.
func (c *Client) newEngine(projectID string) (*checklist.Engine, error) {
	eng, err := checklist.NewEngine(checklist.EngineConfig{
		Tasks:   c.tasks,
		Catalog: c.catalog,
		Project: model.ProjectContext{ProjectID: projectID},
		Logger:  c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create engine: %w", err)
	}

	return eng, nil
}

// getProject resolves the project an operation acts on, so an unknown
// project id surfaces as [ErrNotFound] instead of an empty checklist.
func (c *Client) getProject(ctx context.Context, projectID string) (*model.Project, error) {
	p, err := c.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}

	return p, nil
}

// ensureOrg returns the organisation of the database, creating it on first
// use. SDK databases are single tenant, the first organisation wins.
func (c *Client) ensureOrg(ctx context.Context) (*model.Organisation, error) {
	orgs, err := c.repo.ListOrganisations(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list organisations: %w", err)
	}
	if len(orgs) > 0 {
		return &orgs[0], nil
	}

	// Embedded databases are not billed, the pro plan keeps every feature open.
	org, err := c.repo.CreateOrganisation(ctx, model.Organisation{
		Name: defaultOrgName,
		Plan: model.PlanPro,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create organisation: %w", err)
	}

	return org, nil
}
