package server

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/auth"
	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/checklist"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/server"
	"github.com/Greg-CLD/tcof/internal/storage/sqlite"
	"github.com/Greg-CLD/tcof/internal/tasksource/rest"
)

// Seeded admin credentials.
const (
	UserEmail    = "ops@acme.test"
	UserPassword = "integration-s3cret"
)

// Catalog is the success factor catalog the API tests serve. It has three
// factor recommendations spread over three stages.
const Catalog = `factors:
  - id: F1
    title: Secure a project champion
    tasks:
      identification:
        - Name the project champion
      definition:
        - Confirm the champion owns the budget
  - id: F2
    title: Plan the delivery
    tasks:
      delivery:
        - Walk the plan with the delivery team
heuristics:
  - id: H1
    title: Keep the first release boring
`

// Env is a running API server together with everything the tests need to
// talk to and inspect it.
type Env struct {
	URL   string
	Repo  *sqlite.Repository
	Auth  *auth.Service
	Org   *model.Organisation
	User  *model.User
	Token string
}

// StartServer boots the whole API stack over a fresh SQLite database and a
// file catalog, seeds an organisation with one admin user and returns a
// logged in environment. The server is stopped when the test ends.
func StartServer(t *testing.T, plan model.Plan) Env {
	t.Helper()

	if os.Getenv("TCOF_INTEGRATION") != "true" {
		t.Skipf("Skipping integration test: TCOF_INTEGRATION is not set to 'true'")
	}

	ctx := context.Background()
	dir := t.TempDir()

	catalogPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(Catalog), 0o644))

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: filepath.Join(dir, "tcof.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	catalogSrc, err := catalog.NewFileSource(catalog.FileSourceConfig{Path: catalogPath})
	require.NoError(t, err)

	authSvc, err := auth.NewService(auth.ServiceConfig{Repository: repo})
	require.NoError(t, err)

	srv, err := server.NewServer(server.ServerConfig{
		Repository: repo,
		Catalog:    catalogSrc,
		Auth:       authSvc,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	// Seed an organisation and a logged in admin.
	org, err := repo.CreateOrganisation(ctx, model.Organisation{Name: "Acme", Plan: plan})
	require.NoError(t, err)

	user, err := authSvc.CreateUser(ctx, model.User{
		OrgID: org.ID,
		Email: UserEmail,
		Name:  "Ops",
		Role:  model.RoleAdmin,
	}, UserPassword)
	require.NoError(t, err)

	sess, _, err := authSvc.Login(ctx, UserEmail, UserPassword)
	require.NoError(t, err)

	return Env{
		URL:   ts.URL,
		Repo:  repo,
		Auth:  authSvc,
		Org:   org,
		User:  user,
		Token: sess.Token,
	}
}

// NewAPIClient returns a REST client against the environment server.
func NewAPIClient(t *testing.T, env Env, token string) *rest.Client {
	t.Helper()

	client, err := rest.NewClient(rest.ClientConfig{
		BaseURL: env.URL,
		Token:   token,
	})
	require.NoError(t, err)

	return client
}

// NewRemoteEngine builds a reconciliation engine that reads tasks and the
// catalog over the API, the way the CLI does with --api-url.
func NewRemoteEngine(t *testing.T, env Env, projectID string) *checklist.Engine {
	t.Helper()

	catalogSrc, err := catalog.NewHTTPSource(catalog.HTTPSourceConfig{
		URL: env.URL + "/api/catalog",
	})
	require.NoError(t, err)

	eng, err := checklist.NewEngine(checklist.EngineConfig{
		Tasks:   NewAPIClient(t, env, env.Token),
		Catalog: catalogSrc,
		Project: model.ProjectContext{ProjectID: projectID},
	})
	require.NoError(t, err)

	return eng
}
