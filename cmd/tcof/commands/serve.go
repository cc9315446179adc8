package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	rcron "github.com/robfig/cron/v3"

	"github.com/Greg-CLD/tcof/internal/auth"
	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/server"
	"github.com/Greg-CLD/tcof/internal/storage"
	"github.com/Greg-CLD/tcof/internal/storage/postgres"
	"github.com/Greg-CLD/tcof/internal/storage/sqlite"
)

// ServeCommand runs the API server.
type ServeCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	listenAddr      string
	dbURL           string
	sessionTTL      time.Duration
	refreshInterval time.Duration

	bootstrapAdmin    string
	bootstrapPassword string
	bootstrapOrg      string
}

// NewServeCommand returns the serve command.
func NewServeCommand(rootCmd *RootCommand, app *kingpin.Application) *ServeCommand {
	c := &ServeCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("serve", "Run the API server.")
	c.Cmd.Flag("listen-addr", "Address the server listens on.").Default(":8080").StringVar(&c.listenAddr)
	c.Cmd.Flag("db-url", "PostgreSQL connection string. When empty the server uses the SQLite database at --db-path.").StringVar(&c.dbURL)
	c.Cmd.Flag("session-ttl", "How long login sessions stay valid.").Default("720h").DurationVar(&c.sessionTTL)
	c.Cmd.Flag("refresh-interval", "How often a file catalog is reloaded (0 disables the schedule).").Default("1h").DurationVar(&c.refreshInterval)
	c.Cmd.Flag("bootstrap-admin", "Email of an admin user to create on boot if it does not exist.").StringVar(&c.bootstrapAdmin)
	c.Cmd.Flag("bootstrap-password", "Password for the bootstrap admin.").StringVar(&c.bootstrapPassword)
	c.Cmd.Flag("bootstrap-org", "Organisation the bootstrap admin belongs to, created if missing.").Default("Main").StringVar(&c.bootstrapOrg)

	return c
}

func (c ServeCommand) Name() string { return c.Cmd.FullCommand() }

func (c ServeCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Storage backend.
	var repo storage.Repository
	backend := "sqlite"
	if c.dbURL != "" {
		backend = "postgres"
		pgRepo, err := postgres.NewRepository(ctx, postgres.RepositoryConfig{
			DSN:    c.dbURL,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("could not create repository: %w", err)
		}
		defer pgRepo.Close()
		repo = pgRepo
	} else {
		sqlRepo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
			DBPath: c.rootCmd.DBPath,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("could not create repository: %w", err)
		}
		defer sqlRepo.Close()
		repo = sqlRepo
	}

	// Catalog. A --catalog file is served through a refreshing cache, the
	// default is the reference tables of the repository so admin edits are
	// visible without a restart.
	var (
		catalogSrc catalog.Source
		cache      *catalog.Cache
		watcher    *catalog.Watcher
	)
	if c.rootCmd.CatalogPath != "" {
		fileSrc, err := catalog.NewFileSource(catalog.FileSourceConfig{
			Path:   c.rootCmd.CatalogPath,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("could not create catalog source: %w", err)
		}

		cache, err = catalog.NewCache(catalog.CacheConfig{
			Source: fileSrc,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("could not create catalog cache: %w", err)
		}
		if err := cache.Refresh(ctx); err != nil {
			return fmt.Errorf("could not load catalog file: %w", err)
		}

		watcher, err = catalog.NewWatcher(catalog.WatcherConfig{
			Path:   c.rootCmd.CatalogPath,
			Reload: cache.Refresh,
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("could not create catalog watcher: %w", err)
		}

		catalogSrc = cache
	} else {
		storeSrc, err := catalog.NewStoreSource(catalog.StoreSourceConfig{
			Repository: repo,
			Logger:     logger,
		})
		if err != nil {
			return fmt.Errorf("could not create catalog source: %w", err)
		}
		catalogSrc = storeSrc
	}

	// Auth service.
	authSvc, err := auth.NewService(auth.ServiceConfig{
		Repository: repo,
		SessionTTL: c.sessionTTL,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create auth service: %w", err)
	}

	if c.bootstrapAdmin != "" {
		if err := c.bootstrap(ctx, repo, authSvc); err != nil {
			return fmt.Errorf("could not bootstrap admin: %w", err)
		}
	}

	srv, err := server.NewServer(server.ServerConfig{
		ListenAddr: c.listenAddr,
		Repository: repo,
		Catalog:    catalogSrc,
		Auth:       authSvc,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create server: %w", err)
	}

	logger.Infof("Serving API on %s (%s storage)", c.listenAddr, backend)

	// If the catalog is not file backed the server is the only component.
	if watcher == nil {
		return srv.Run(ctx)
	}

	// Run the server, the file watcher and the scheduled refresh using
	// oklog/run for lifecycle management. First stop stops all.
	var g run.Group

	// API server.
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error {
				return srv.Run(ctx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	// Catalog file watcher.
	{
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error {
				return watcher.Run(ctx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	// Scheduled catalog refresh.
	if c.refreshInterval > 0 {
		refresher := catalogRefresher{cache: cache, interval: c.refreshInterval, logger: logger}
		ctx, cancel := context.WithCancel(ctx)
		g.Add(
			func() error {
				return refresher.Run(ctx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// bootstrap creates the admin user and its organisation when they do not
// exist yet, so a fresh deployment can be logged into.
func (c ServeCommand) bootstrap(ctx context.Context, repo storage.Repository, authSvc *auth.Service) error {
	if c.bootstrapPassword == "" {
		return fmt.Errorf("--bootstrap-password is required when --bootstrap-admin is set")
	}

	if _, err := repo.GetUserByEmail(ctx, c.bootstrapAdmin); err == nil {
		c.rootCmd.Logger.Debugf("Bootstrap admin %s already exists", c.bootstrapAdmin)
		return nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("could not look up user: %w", err)
	}

	org, err := c.ensureOrg(ctx, repo)
	if err != nil {
		return err
	}

	user, err := authSvc.CreateUser(ctx, model.User{
		OrgID: org.ID,
		Email: c.bootstrapAdmin,
		Name:  "Administrator",
		Role:  model.RoleAdmin,
	}, c.bootstrapPassword)
	if err != nil {
		return err
	}

	c.rootCmd.Logger.Infof("Bootstrapped admin %s in organisation %q", user.Email, org.Name)

	return nil
}

func (c ServeCommand) ensureOrg(ctx context.Context, repo storage.Repository) (*model.Organisation, error) {
	orgs, err := repo.ListOrganisations(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list organisations: %w", err)
	}
	for _, org := range orgs {
		if org.Name == c.bootstrapOrg {
			return &org, nil
		}
	}

	org, err := repo.CreateOrganisation(ctx, model.Organisation{Name: c.bootstrapOrg, Plan: model.PlanFree})
	if err != nil {
		return nil, fmt.Errorf("could not create organisation: %w", err)
	}

	return org, nil
}

// catalogRefresher reloads the catalog cache on a schedule, a safety net for
// file changes the watcher misses (network filesystems mostly).
type catalogRefresher struct {
	cache    *catalog.Cache
	interval time.Duration
	logger   log.Logger
}

// Run refreshes the cache on the schedule until the context is done.
func (r catalogRefresher) Run(ctx context.Context) error {
	cr := rcron.New()
	_, err := cr.AddFunc("@every "+r.interval.String(), func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := r.cache.Refresh(refreshCtx); err != nil {
			r.logger.Errorf("Scheduled catalog refresh failed: %s", err)
		}
	})
	if err != nil {
		return fmt.Errorf("could not schedule catalog refresh: %w", err)
	}

	cr.Start()
	<-ctx.Done()

	stopCtx := cr.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
		r.logger.Warningf("Stop timeout waiting for a running refresh")
	}

	return nil
}
