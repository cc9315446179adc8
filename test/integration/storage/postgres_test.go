package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/test/integration/storage"
)

func TestPostgresTaskLifecycle(t *testing.T) {
	config := storage.NewConfig(t)
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo := storage.NewRepository(t, config)

	// The database is shared, project ids are unique per run.
	projectID := storage.TestID("tasks")
	t.Cleanup(func() { _ = repo.DeleteProjectTasks(ctx, projectID) })

	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.CreateTask(ctx, model.ProjectTask{
		ProjectID: projectID,
		Text:      "Confirm funding",
		Stage:     model.StageDefinition,
		Origin:    model.OriginFactor,
		SourceID:  "F2-1a2b3c4d",
		Priority:  model.PriorityHigh,
		DueDate:   &due,
		Owner:     "alex",
		Status:    model.TaskStatusWorking,
	})
	require.NoError(err)
	require.NotEmpty(created.ID)

	got, err := repo.GetTask(ctx, projectID, created.ID)
	require.NoError(err)
	assert.Equal("Confirm funding", got.Text)
	assert.Equal(model.StageDefinition, got.Stage)
	assert.Equal("F2-1a2b3c4d", got.SourceID)
	assert.Equal(model.TaskStatusWorking, got.Status)
	require.NotNil(got.DueDate)
	assert.Equal(due, *got.DueDate)

	// Duplicated id should fail.
	_, err = repo.CreateTask(ctx, model.ProjectTask{ID: created.ID, ProjectID: projectID, Text: "dup"})
	assert.True(errors.Is(err, model.ErrAlreadyExists), "expected already exists, got: %v", err)

	// Completing through an update keeps status and flag coherent.
	completed := true
	updated, err := repo.UpdateTask(ctx, projectID, created.ID, model.TaskUpdate{Completed: &completed})
	require.NoError(err)
	assert.True(updated.Completed)
	assert.Equal(model.TaskStatusDone, updated.Status)

	tasks, err := repo.ListProjectTasks(ctx, projectID)
	require.NoError(err)
	require.Len(tasks, 1)
	assert.Equal(model.TaskStatusDone, tasks[0].Status)

	require.NoError(repo.DeleteTask(ctx, projectID, created.ID))
	err = repo.DeleteTask(ctx, projectID, created.ID)
	assert.True(errors.Is(err, model.ErrNotFound), "expected not found, got: %v", err)
}

func TestPostgresProjectLifecycle(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	config := storage.NewConfig(t)
	repo := storage.NewRepository(t, config)

	org, err := repo.CreateOrganisation(ctx, model.Organisation{Name: storage.TestID("org"), Plan: model.PlanFree})
	require.NoError(err)

	before, err := repo.CountProjects(ctx, org.ID)
	require.NoError(err)
	require.Equal(0, before)

	project, err := repo.CreateProject(ctx, model.Project{OrgID: org.ID, Name: "Website relaunch"})
	require.NoError(err)
	t.Cleanup(func() { _ = repo.DeleteProject(ctx, project.ID) })

	got, err := repo.GetProject(ctx, project.ID)
	require.NoError(err)
	assert.Equal("Website relaunch", got.Name)
	assert.Equal(org.ID, got.OrgID)

	count, err := repo.CountProjects(ctx, org.ID)
	require.NoError(err)
	assert.Equal(1, count)

	// Deleting a project removes its tasks and ratings too.
	_, err = repo.CreateTask(ctx, model.ProjectTask{ProjectID: project.ID, Text: "t"})
	require.NoError(err)
	require.NoError(repo.UpsertRating(ctx, model.FactorRating{ProjectID: project.ID, FactorID: "F1", Score: 5}))

	require.NoError(repo.DeleteProject(ctx, project.ID))

	tasks, err := repo.ListProjectTasks(ctx, project.ID)
	require.NoError(err)
	assert.Empty(tasks)

	ratings, err := repo.ListProjectRatings(ctx, project.ID)
	require.NoError(err)
	assert.Empty(ratings)

	_, err = repo.GetProject(ctx, project.ID)
	assert.True(errors.Is(err, model.ErrNotFound), "expected not found, got: %v", err)
}

func TestPostgresUsersAndSessions(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	config := storage.NewConfig(t)
	repo := storage.NewRepository(t, config)

	org, err := repo.CreateOrganisation(ctx, model.Organisation{Name: storage.TestID("org")})
	require.NoError(err)

	email := storage.TestID("user") + "@example.org"
	user, err := repo.CreateUser(ctx, model.User{
		OrgID:        org.ID,
		Email:        email,
		Name:         "Sam",
		Role:         model.RoleAdmin,
		PasswordHash: []byte("x"),
	})
	require.NoError(err)

	_, err = repo.CreateUser(ctx, model.User{OrgID: org.ID, Email: email, Name: "Other", PasswordHash: []byte("y")})
	assert.True(errors.Is(err, model.ErrAlreadyExists), "expected already exists, got: %v", err)

	byEmail, err := repo.GetUserByEmail(ctx, email)
	require.NoError(err)
	assert.Equal(user.ID, byEmail.ID)

	token := storage.TestID("session")
	now := time.Now().UTC()
	require.NoError(repo.CreateSession(ctx, model.Session{Token: token, UserID: user.ID, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}))

	session, err := repo.GetSession(ctx, token)
	require.NoError(err)
	assert.Equal(user.ID, session.UserID)

	require.NoError(repo.DeleteSession(ctx, token))
	_, err = repo.GetSession(ctx, token)
	assert.True(errors.Is(err, model.ErrNotFound), "expected not found, got: %v", err)

	// Plan upgrades land.
	require.NoError(repo.UpdateOrganisationPlan(ctx, org.ID, model.PlanPro))
	got, err := repo.GetOrganisation(ctx, org.ID)
	require.NoError(err)
	assert.Equal(model.PlanPro, got.Plan)
}

func TestPostgresFactors(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	config := storage.NewConfig(t)
	repo := storage.NewRepository(t, config)

	// Factors are shared reference data, use a unique id and delete it after.
	factorID := storage.TestID("factor")
	t.Cleanup(func() { _ = repo.DeleteFactor(ctx, factorID) })

	f := model.SuccessFactor{
		ID:    factorID,
		Title: "Plan for success",
		Tasks: map[model.Stage][]string{
			model.StageIdentification: {"Agree sponsor", "Write vision"},
		},
	}
	require.NoError(repo.SaveFactor(ctx, f))

	f.Title = "Plan for success (v2)"
	require.NoError(repo.SaveFactor(ctx, f))

	factors, err := repo.ListFactors(ctx)
	require.NoError(err)

	var got *model.SuccessFactor
	for i := range factors {
		if factors[i].ID == factorID {
			got = &factors[i]
		}
	}
	require.NotNil(got, "saved factor not listed")
	assert.Equal("Plan for success (v2)", got.Title)
	assert.Equal([]string{"Agree sponsor", "Write vision"}, got.Tasks[model.StageIdentification])

	require.NoError(repo.DeleteFactor(ctx, factorID))
	err = repo.DeleteFactor(ctx, factorID)
	assert.True(errors.Is(err, model.ErrNotFound), "expected not found, got: %v", err)
}
