package commands

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/storage/sqlite"
)

func TestEnsureLocalOrg(t *testing.T) {
	ctx := context.Background()

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: filepath.Join(t.TempDir(), "tcof.db"),
	})
	require.NoError(t, err)
	defer repo.Close()

	org, err := ensureLocalOrg(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, localOrgName, org.Name)
	assert.Equal(t, model.PlanPro, org.Plan)

	// A second call returns the existing organisation instead of creating
	// another one.
	again, err := ensureLocalOrg(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, org.ID, again.ID)

	orgs, err := repo.ListOrganisations(ctx)
	require.NoError(t, err)
	assert.Len(t, orgs, 1)
}

func TestLocalCatalogPath(t *testing.T) {
	tests := map[string]struct {
		catalogPath string
		expSuffix   string
	}{
		"An explicit path should win": {
			catalogPath: "/etc/tcof/catalog.yaml",
			expSuffix:   "/etc/tcof/catalog.yaml",
		},
		"The default should live under the home directory": {
			expSuffix: filepath.Join(".tcof", "catalog.yaml"),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rootCmd := &RootCommand{CatalogPath: tc.catalogPath}

			path := localCatalogPath(rootCmd)

			assert.True(t, strings.HasSuffix(path, tc.expSuffix), "got %q", path)
		})
	}
}

func TestStageNames(t *testing.T) {
	assert.Equal(t, []string{"identification", "definition", "delivery", "closure"}, stageNames())
}
