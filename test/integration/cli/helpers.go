package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/test/integration/testutils"
)

// Catalog is the success factor catalog the CLI tests run against. It has
// three factor recommendations spread over three stages.
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

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		return fmt.Errorf("tcof binary path is required (TCOF_INTEGRATION_BINARY)")
	}

	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("tcof binary not found at %q: %w", c.Binary, err)
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// The test is skipped unless TCOF_INTEGRATION is set to "true" and the config
// is valid.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "TCOF_INTEGRATION"
		envBinary     = "TCOF_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary: os.Getenv(envBinary),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// Workspace creates a fresh database path and catalog file for one test.
func Workspace(t *testing.T) (dbPath, catalogPath string) {
	t.Helper()

	dir := t.TempDir()
	catalogPath = filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(Catalog), 0o644))

	return filepath.Join(dir, "tcof.db"), catalogPath
}

// RunTCOFCmd runs a tcof command against a specific database and catalog with
// logging suppressed. cmdArgs is split by spaces, use RunTCOFCmdArgs for
// arguments that contain spaces.
func RunTCOFCmd(ctx context.Context, config Config, dbPath, catalogPath, cmdArgs string) (stdout, stderr []byte, err error) {
	allArgs := fmt.Sprintf("--no-log --db-path %s --catalog %s %s", dbPath, catalogPath, cmdArgs)
	return testutils.RunTCOF(ctx, nil, config.Binary, allArgs, true)
}

// RunTCOFCmdArgs runs a tcof command with pre-split arguments, preserving
// arguments that contain spaces.
func RunTCOFCmdArgs(ctx context.Context, config Config, dbPath, catalogPath string, cmdArgs []string) (stdout, stderr []byte, err error) {
	allArgs := append([]string{"--no-log", "--db-path", dbPath, "--catalog", catalogPath}, cmdArgs...)
	return testutils.RunTCOFArgs(ctx, nil, config.Binary, allArgs, true)
}

// RunProjectCreate creates a project.
func RunProjectCreate(ctx context.Context, config Config, dbPath, catalogPath, name string) (stdout, stderr []byte, err error) {
	return RunTCOFCmd(ctx, config, dbPath, catalogPath, fmt.Sprintf("project create --name %s", name))
}

// RunProjectList lists projects in JSON format.
func RunProjectList(ctx context.Context, config Config, dbPath, catalogPath string) (stdout, stderr []byte, err error) {
	return RunTCOFCmd(ctx, config, dbPath, catalogPath, "project list --format json")
}

// RunChecklist shows a project checklist in JSON format.
func RunChecklist(ctx context.Context, config Config, dbPath, catalogPath, projectID string) (stdout, stderr []byte, err error) {
	return RunTCOFCmd(ctx, config, dbPath, catalogPath, fmt.Sprintf("checklist --project %s --format json", projectID))
}

// RunSummary shows a project progress summary in JSON format.
func RunSummary(ctx context.Context, config Config, dbPath, catalogPath, projectID string) (stdout, stderr []byte, err error) {
	return RunTCOFCmd(ctx, config, dbPath, catalogPath, fmt.Sprintf("checklist --project %s --summary --format json", projectID))
}

// RunTaskAdd adds a custom task. The text may contain spaces.
func RunTaskAdd(ctx context.Context, config Config, dbPath, catalogPath, projectID, text string, extraArgs ...string) (stdout, stderr []byte, err error) {
	args := append([]string{"task", "--project", projectID, "add", text}, extraArgs...)
	return RunTCOFCmdArgs(ctx, config, dbPath, catalogPath, args)
}

// RunTaskDone marks a checklist task as done.
func RunTaskDone(ctx context.Context, config Config, dbPath, catalogPath, projectID, taskID string) (stdout, stderr []byte, err error) {
	return RunTCOFCmd(ctx, config, dbPath, catalogPath, fmt.Sprintf("task --project %s done %s", projectID, taskID))
}

// RunTaskRm deletes a stored task.
func RunTaskRm(ctx context.Context, config Config, dbPath, catalogPath, projectID, taskID string) (stdout, stderr []byte, err error) {
	return RunTCOFCmd(ctx, config, dbPath, catalogPath, fmt.Sprintf("task --project %s rm %s", projectID, taskID))
}

// RunExport exports a project checklist as CSV to stdout.
func RunExport(ctx context.Context, config Config, dbPath, catalogPath, projectID string) (stdout, stderr []byte, err error) {
	return RunTCOFCmd(ctx, config, dbPath, catalogPath, fmt.Sprintf("export --project %s", projectID))
}

// RunCatalog shows the catalog in JSON format.
func RunCatalog(ctx context.Context, config Config, dbPath, catalogPath string) (stdout, stderr []byte, err error) {
	return RunTCOFCmd(ctx, config, dbPath, catalogPath, "catalog --format json")
}

// ProjectIDFromCreate extracts the project ID from the project create output.
func ProjectIDFromCreate(t *testing.T, stdout []byte) string {
	t.Helper()

	sc := bufio.NewScanner(bytes.NewReader(stdout))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if rest, ok := strings.CutPrefix(line, "ID:"); ok {
			return strings.TrimSpace(rest)
		}
	}

	t.Fatalf("no project ID in output: %s", stdout)
	return ""
}
