package storage

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/storage/postgres"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	PostgresDSN string
}

func (c *Config) defaults() error {
	if c.PostgresDSN == "" {
		return fmt.Errorf("postgres DSN is required (TCOF_INTEGRATION_POSTGRES_DSN)")
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// The tests need a reachable PostgreSQL database and are skipped unless
// TCOF_INTEGRATION is set to "true" and a DSN is given.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "TCOF_INTEGRATION"
		envDSN        = "TCOF_INTEGRATION_POSTGRES_DSN"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		PostgresDSN: os.Getenv(envDSN),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// NewRepository connects to the configured database, migrating the schema on
// first use. The connection is closed when the test ends.
func NewRepository(t *testing.T, config Config) *postgres.Repository {
	t.Helper()

	repo, err := postgres.NewRepository(context.Background(), postgres.RepositoryConfig{
		DSN: config.PostgresDSN,
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

// TestID returns a unique id so tests can share a database without
// stepping on each other.
func TestID(prefix string) string {
	return fmt.Sprintf("itest-%s-%s", prefix, strings.ToLower(ulid.Make().String()))
}
