package commands

import (
	"context"
	"fmt"

	"k8s.io/client-go/util/homedir"

	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/checklist"
	"github.com/Greg-CLD/tcof/internal/conventions"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/storage/sqlite"
	"github.com/Greg-CLD/tcof/internal/tasksource"
	"github.com/Greg-CLD/tcof/internal/tasksource/rest"
	taskstore "github.com/Greg-CLD/tcof/internal/tasksource/store"
)

// localOrgName is the organisation local databases file projects under.
const localOrgName = "Personal"

// openRepository opens the local SQLite database.
func openRepository(ctx context.Context, rootCmd *RootCommand) (*sqlite.Repository, error) {
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: rootCmd.DBPath,
		Logger: rootCmd.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	return repo, nil
}

// newAPIClient creates the client for the remote API server.
func newAPIClient(rootCmd *RootCommand) (*rest.Client, error) {
	client, err := rest.NewClient(rest.ClientConfig{
		BaseURL: rootCmd.APIURL,
		Token:   rootCmd.APIToken,
		Logger:  rootCmd.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create API client: %w", err)
	}

	return client, nil
}

// newTaskSource returns the task source edits go through, the API client
// when --api-url is set and the local SQLite store otherwise.
func newTaskSource(ctx context.Context, rootCmd *RootCommand) (tasksource.Source, error) {
	if rootCmd.remote() {
		return newAPIClient(rootCmd)
	}

	repo, err := openRepository(ctx, rootCmd)
	if err != nil {
		return nil, err
	}

	src, err := taskstore.NewSource(taskstore.SourceConfig{
		Repository: repo,
		Logger:     rootCmd.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create task source: %w", err)
	}

	return src, nil
}

// newCatalogSource returns the catalog source, the public catalog endpoint
// of the API server when --api-url is set and the local YAML file otherwise.
func newCatalogSource(rootCmd *RootCommand) (catalog.Source, error) {
	if rootCmd.remote() {
		src, err := catalog.NewHTTPSource(catalog.HTTPSourceConfig{
			URL:    rootCmd.APIURL + "/api/catalog",
			Logger: rootCmd.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create catalog source: %w", err)
		}
		return src, nil
	}

	src, err := catalog.NewFileSource(catalog.FileSourceConfig{
		Path:   localCatalogPath(rootCmd),
		Logger: rootCmd.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create catalog source: %w", err)
	}

	return src, nil
}

// localCatalogPath resolves the catalog file path for local commands.
func localCatalogPath(rootCmd *RootCommand) string {
	if rootCmd.CatalogPath != "" {
		return rootCmd.CatalogPath
	}
	return conventions.CatalogPath(homedir.HomeDir())
}

// newEngine builds a reconciliation engine for one project over the
// configured task and catalog sources.
func newEngine(ctx context.Context, rootCmd *RootCommand, projectID string) (*checklist.Engine, error) {
	tasks, err := newTaskSource(ctx, rootCmd)
	if err != nil {
		return nil, err
	}

	catalogSrc, err := newCatalogSource(rootCmd)
	if err != nil {
		return nil, err
	}

	eng, err := checklist.NewEngine(checklist.EngineConfig{
		Tasks:   tasks,
		Catalog: catalogSrc,
		Project: model.ProjectContext{ProjectID: projectID},
		Logger:  rootCmd.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create engine: %w", err)
	}

	return eng, nil
}

// ensureLocalOrg returns the organisation of the local database, creating it
// on first use. Local databases are single tenant, the first organisation
// wins.
func ensureLocalOrg(ctx context.Context, repo *sqlite.Repository) (*model.Organisation, error) {
	orgs, err := repo.ListOrganisations(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list organisations: %w", err)
	}
	if len(orgs) > 0 {
		return &orgs[0], nil
	}

	// Local databases are not billed, the pro plan keeps every feature open.
	org, err := repo.CreateOrganisation(ctx, model.Organisation{
		Name: localOrgName,
		Plan: model.PlanPro,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create organisation: %w", err)
	}

	return org, nil
}
