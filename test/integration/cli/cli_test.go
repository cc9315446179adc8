package cli_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/test/integration/cli"
)

func TestProjectCreateList(t *testing.T) {
	config := cli.NewConfig(t)
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	dbPath, catalogPath := cli.Workspace(t)

	// Create two projects.
	stdout, stderr, err := cli.RunProjectCreate(ctx, config, dbPath, catalogPath, "relaunch")
	require.NoError(err, "stderr: %s", stderr)
	assert.Contains(string(stdout), "Project created!")
	assert.Contains(string(stdout), "Name: relaunch")

	_, stderr, err = cli.RunProjectCreate(ctx, config, dbPath, catalogPath, "migration")
	require.NoError(err, "stderr: %s", stderr)

	// List them back.
	stdout, stderr, err = cli.RunProjectList(ctx, config, dbPath, catalogPath)
	require.NoError(err, "stderr: %s", stderr)

	var projects []model.Project
	require.NoError(json.Unmarshal(stdout, &projects))
	require.Len(projects, 2)

	names := []string{projects[0].Name, projects[1].Name}
	assert.Contains(names, "relaunch")
	assert.Contains(names, "migration")
	for _, p := range projects {
		assert.NotEmpty(p.ID)
		assert.False(p.CreatedAt.IsZero())
	}
}

func TestChecklistLifecycle(t *testing.T) {
	config := cli.NewConfig(t)
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	dbPath, catalogPath := cli.Workspace(t)

	stdout, stderr, err := cli.RunProjectCreate(ctx, config, dbPath, catalogPath, "relaunch")
	require.NoError(err, "stderr: %s", stderr)
	projectID := cli.ProjectIDFromCreate(t, stdout)

	// A fresh project shows the catalog recommendations.
	cl := getChecklist(ctx, t, config, dbPath, catalogPath, projectID)
	require.Len(cl.All, 3)
	for _, task := range cl.All {
		assert.False(task.Persisted)
		assert.Equal(model.OriginFactor, task.Origin)
		assert.Equal(model.TaskStatusToDo, task.Status)
	}
	require.Len(cl.Stages[model.StageIdentification], 1)
	recID := cl.Stages[model.StageIdentification][0].ID

	// Completing a recommendation materializes it without growing the list.
	stdout, stderr, err = cli.RunTaskDone(ctx, config, dbPath, catalogPath, projectID, recID)
	require.NoError(err, "stderr: %s", stderr)
	assert.Contains(string(stdout), "Name the project champion")
	assert.Contains(string(stdout), "Done")

	cl = getChecklist(ctx, t, config, dbPath, catalogPath, projectID)
	require.Len(cl.All, 3)

	var done *model.UnifiedTask
	for i := range cl.All {
		if cl.All[i].SourceID == recID {
			done = &cl.All[i]
		}
	}
	require.NotNil(done, "materialized task not found")
	assert.True(done.Persisted)
	assert.NotEqual(recID, done.ID)
	assert.Equal(model.TaskStatusDone, done.Status)

	// Add a custom task with spaces in the text.
	_, stderr, err = cli.RunTaskAdd(ctx, config, dbPath, catalogPath, projectID, "Ship the newsletter", "--stage", "closure", "--owner", "dana")
	require.NoError(err, "stderr: %s", stderr)

	cl = getChecklist(ctx, t, config, dbPath, catalogPath, projectID)
	require.Len(cl.All, 4)
	require.Len(cl.Stages[model.StageClosure], 1)

	custom := cl.Stages[model.StageClosure][0]
	assert.Equal("Ship the newsletter", custom.Text)
	assert.Equal(model.OriginCustom, custom.Origin)
	assert.Equal("dana", custom.Owner)
	assert.True(custom.Persisted)

	// Remove the custom task.
	stdout, stderr, err = cli.RunTaskRm(ctx, config, dbPath, catalogPath, projectID, custom.ID)
	require.NoError(err, "stderr: %s", stderr)
	assert.Contains(string(stdout), "deleted")

	cl = getChecklist(ctx, t, config, dbPath, catalogPath, projectID)
	assert.Len(cl.All, 3)
}

func TestTaskRemoveMaterialized(t *testing.T) {
	config := cli.NewConfig(t)
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	dbPath, catalogPath := cli.Workspace(t)

	stdout, stderr, err := cli.RunProjectCreate(ctx, config, dbPath, catalogPath, "relaunch")
	require.NoError(err, "stderr: %s", stderr)
	projectID := cli.ProjectIDFromCreate(t, stdout)

	cl := getChecklist(ctx, t, config, dbPath, catalogPath, projectID)
	require.Len(cl.Stages[model.StageDelivery], 1)
	recID := cl.Stages[model.StageDelivery][0].ID

	// An untouched recommendation has no stored record to delete.
	_, stderr, err = cli.RunTaskRm(ctx, config, dbPath, catalogPath, projectID, recID)
	require.Error(err)
	assert.Contains(string(stderr), "could not delete task")

	// Materialize it, then delete the stored record.
	_, stderr, err = cli.RunTaskDone(ctx, config, dbPath, catalogPath, projectID, recID)
	require.NoError(err, "stderr: %s", stderr)

	cl = getChecklist(ctx, t, config, dbPath, catalogPath, projectID)
	var storedID string
	for _, task := range cl.All {
		if task.SourceID == recID {
			storedID = task.ID
		}
	}
	require.NotEmpty(storedID)

	_, stderr, err = cli.RunTaskRm(ctx, config, dbPath, catalogPath, projectID, storedID)
	require.NoError(err, "stderr: %s", stderr)

	// The recommendation resurfaces under its catalog ID.
	cl = getChecklist(ctx, t, config, dbPath, catalogPath, projectID)
	require.Len(cl.Stages[model.StageDelivery], 1)
	back := cl.Stages[model.StageDelivery][0]
	assert.Equal(recID, back.ID)
	assert.False(back.Persisted)
	assert.Equal(model.TaskStatusToDo, back.Status)
}

func TestExport(t *testing.T) {
	config := cli.NewConfig(t)
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	dbPath, catalogPath := cli.Workspace(t)

	stdout, stderr, err := cli.RunProjectCreate(ctx, config, dbPath, catalogPath, "relaunch")
	require.NoError(err, "stderr: %s", stderr)
	projectID := cli.ProjectIDFromCreate(t, stdout)

	cl := getChecklist(ctx, t, config, dbPath, catalogPath, projectID)
	_, stderr, err = cli.RunTaskDone(ctx, config, dbPath, catalogPath, projectID, cl.Stages[model.StageIdentification][0].ID)
	require.NoError(err, "stderr: %s", stderr)

	stdout, stderr, err = cli.RunExport(ctx, config, dbPath, catalogPath, projectID)
	require.NoError(err, "stderr: %s", stderr)

	lines := strings.Split(strings.TrimSpace(string(stdout)), "\n")
	require.Len(lines, 4) // Header plus three tasks.
	assert.Equal("Stage,Task,Status,Completed,Priority,Due,Owner,Origin,Notes", lines[0])
	assert.Contains(string(stdout), "Name the project champion")
	assert.Contains(string(stdout), "Done,true")
}

func TestSummary(t *testing.T) {
	config := cli.NewConfig(t)
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	dbPath, catalogPath := cli.Workspace(t)

	stdout, stderr, err := cli.RunProjectCreate(ctx, config, dbPath, catalogPath, "relaunch")
	require.NoError(err, "stderr: %s", stderr)
	projectID := cli.ProjectIDFromCreate(t, stdout)

	cl := getChecklist(ctx, t, config, dbPath, catalogPath, projectID)
	_, stderr, err = cli.RunTaskDone(ctx, config, dbPath, catalogPath, projectID, cl.Stages[model.StageIdentification][0].ID)
	require.NoError(err, "stderr: %s", stderr)

	stdout, stderr, err = cli.RunSummary(ctx, config, dbPath, catalogPath, projectID)
	require.NoError(err, "stderr: %s", stderr)

	var sum model.ProjectSummary
	require.NoError(json.Unmarshal(stdout, &sum))
	assert.Equal(projectID, sum.ProjectID)
	assert.Equal(3, sum.TotalTasks)
	assert.Equal(1, sum.DoneTasks)
	assert.Len(sum.Stages, 4)
}

func TestCatalog(t *testing.T) {
	config := cli.NewConfig(t)
	assert := assert.New(t)
	require := require.New(t)

	ctx := context.Background()
	dbPath, catalogPath := cli.Workspace(t)

	stdout, stderr, err := cli.RunCatalog(ctx, config, dbPath, catalogPath)
	require.NoError(err, "stderr: %s", stderr)

	var factors []model.SuccessFactor
	require.NoError(json.Unmarshal(stdout, &factors))
	require.Len(factors, 2)
	assert.Equal("F1", factors[0].ID)
	assert.Equal("F2", factors[1].ID)
	assert.Len(factors[0].Tasks[model.StageIdentification], 1)
}

func getChecklist(ctx context.Context, t *testing.T, config cli.Config, dbPath, catalogPath, projectID string) model.Checklist {
	t.Helper()

	stdout, stderr, err := cli.RunChecklist(ctx, config, dbPath, catalogPath, projectID)
	require.NoError(t, err, "stderr: %s", stderr)

	var cl model.Checklist
	require.NoError(t, json.Unmarshal(stdout, &cl))

	return cl
}
