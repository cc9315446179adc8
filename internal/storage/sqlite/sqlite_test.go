package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/storage/sqlite"
)

func newTestRepository(t *testing.T) *sqlite.Repository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tcof.db")
	repo, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{DBPath: dbPath})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestRepositoryMissingDBPath(t *testing.T) {
	_, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{})
	assert.Error(t, err)
}

func TestTaskRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo := newTestRepository(t)

	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.CreateTask(ctx, model.ProjectTask{
		ProjectID: "p1",
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

	got, err := repo.GetTask(ctx, "p1", created.ID)
	require.NoError(err)
	assert.Equal("Confirm funding", got.Text)
	assert.Equal(model.StageDefinition, got.Stage)
	assert.Equal(model.OriginFactor, got.Origin)
	assert.Equal("F2-1a2b3c4d", got.SourceID)
	assert.Equal(model.PriorityHigh, got.Priority)
	assert.Equal(model.TaskStatusWorking, got.Status)
	assert.False(got.Completed)
	require.NotNil(got.DueDate)
	assert.Equal(due, *got.DueDate)

	// Duplicated id should fail.
	_, err = repo.CreateTask(ctx, model.ProjectTask{ID: created.ID, ProjectID: "p1", Text: "dup"})
	assert.True(errors.Is(err, model.ErrAlreadyExists))
}

func TestTaskUpdateKeepsStatusCoherent(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo := newTestRepository(t)

	created, err := repo.CreateTask(ctx, model.ProjectTask{ProjectID: "p1", Text: "t", Status: model.TaskStatusToDo})
	require.NoError(err)

	completed := true
	updated, err := repo.UpdateTask(ctx, "p1", created.ID, model.TaskUpdate{Completed: &completed})
	require.NoError(err)
	assert.True(updated.Completed)
	assert.Equal(model.TaskStatusDone, updated.Status)

	// The stored row agrees with the returned one.
	got, err := repo.GetTask(ctx, "p1", created.ID)
	require.NoError(err)
	assert.Equal(updated.Status, got.Status)
	assert.Equal(updated.Completed, got.Completed)
}

func TestTaskListAndDelete(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo := newTestRepository(t)

	for _, text := range []string{"one", "two", "three"} {
		_, err := repo.CreateTask(ctx, model.ProjectTask{ProjectID: "p1", Text: text})
		require.NoError(err)
	}
	_, err := repo.CreateTask(ctx, model.ProjectTask{ProjectID: "p2", Text: "elsewhere"})
	require.NoError(err)

	tasks, err := repo.ListProjectTasks(ctx, "p1")
	require.NoError(err)
	assert.Len(tasks, 3)

	err = repo.DeleteTask(ctx, "p1", tasks[0].ID)
	require.NoError(err)

	err = repo.DeleteTask(ctx, "p1", tasks[0].ID)
	assert.True(errors.Is(err, model.ErrNotFound))

	err = repo.DeleteProjectTasks(ctx, "p1")
	require.NoError(err)

	tasks, err = repo.ListProjectTasks(ctx, "p1")
	require.NoError(err)
	assert.Empty(tasks)

	// Other projects are untouched.
	tasks, err = repo.ListProjectTasks(ctx, "p2")
	require.NoError(err)
	assert.Len(tasks, 1)
}

func TestFactorRoundTrip(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo := newTestRepository(t)

	f := model.SuccessFactor{
		ID:    "F1",
		Title: "Plan for success",
		Tasks: map[model.Stage][]string{
			model.StageIdentification: {"Agree sponsor", "Write vision"},
			model.StageClosure:        {"Capture lessons"},
		},
	}
	require.NoError(repo.SaveFactor(ctx, f))
	require.NoError(repo.SaveFactor(ctx, model.SuccessFactor{ID: "F2", Title: "Second"}))

	// Replace keeps catalog position.
	f.Title = "Plan for success (v2)"
	require.NoError(repo.SaveFactor(ctx, f))

	factors, err := repo.ListFactors(ctx)
	require.NoError(err)
	require.Len(factors, 2)
	assert.Equal("F1", factors[0].ID)
	assert.Equal("Plan for success (v2)", factors[0].Title)
	assert.Equal([]string{"Agree sponsor", "Write vision"}, factors[0].Tasks[model.StageIdentification])

	require.NoError(repo.DeleteFactor(ctx, "F2"))
	err = repo.DeleteFactor(ctx, "F2")
	assert.True(errors.Is(err, model.ErrNotFound))
}

func TestRatingUpsert(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo := newTestRepository(t)

	require.NoError(repo.UpsertRating(ctx, model.FactorRating{ProjectID: "p1", FactorID: "F1", Score: 4}))
	require.NoError(repo.UpsertRating(ctx, model.FactorRating{ProjectID: "p1", FactorID: "F1", Score: 8, Note: "improving"}))
	require.NoError(repo.UpsertRating(ctx, model.FactorRating{ProjectID: "p1", FactorID: "F2", Score: 5}))

	ratings, err := repo.ListProjectRatings(ctx, "p1")
	require.NoError(err)
	require.Len(ratings, 2)
	assert.Equal(8, ratings[0].Score)
	assert.Equal("improving", ratings[0].Note)
}

func TestUsersAndSessions(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo := newTestRepository(t)

	org, err := repo.CreateOrganisation(ctx, model.Organisation{Name: "acme", Plan: model.PlanFree})
	require.NoError(err)

	user, err := repo.CreateUser(ctx, model.User{
		OrgID:        org.ID,
		Email:        "sam@example.org",
		Name:         "Sam",
		Role:         model.RoleAdmin,
		PasswordHash: []byte("x"),
	})
	require.NoError(err)

	// Duplicated email should fail.
	_, err = repo.CreateUser(ctx, model.User{OrgID: org.ID, Email: "sam@example.org", Name: "Other", PasswordHash: []byte("y")})
	assert.True(errors.Is(err, model.ErrAlreadyExists))

	byEmail, err := repo.GetUserByEmail(ctx, "sam@example.org")
	require.NoError(err)
	assert.Equal(user.ID, byEmail.ID)
	assert.Equal(model.RoleAdmin, byEmail.Role)

	now := time.Now().UTC()
	err = repo.CreateSession(ctx, model.Session{Token: "tok", UserID: user.ID, CreatedAt: now, ExpiresAt: now.Add(time.Hour)})
	require.NoError(err)

	session, err := repo.GetSession(ctx, "tok")
	require.NoError(err)
	assert.Equal(user.ID, session.UserID)

	require.NoError(repo.DeleteSession(ctx, "tok"))
	_, err = repo.GetSession(ctx, "tok")
	assert.True(errors.Is(err, model.ErrNotFound))
}

func TestProjectPlanCount(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	ctx := context.Background()

	repo := newTestRepository(t)

	org, err := repo.CreateOrganisation(ctx, model.Organisation{Name: "acme"})
	require.NoError(err)

	_, err = repo.CreateProject(ctx, model.Project{OrgID: org.ID, Name: "one"})
	require.NoError(err)
	project, err := repo.CreateProject(ctx, model.Project{OrgID: org.ID, Name: "two"})
	require.NoError(err)

	count, err := repo.CountProjects(ctx, org.ID)
	require.NoError(err)
	assert.Equal(2, count)

	// Deleting a project removes its tasks and ratings too.
	_, err = repo.CreateTask(ctx, model.ProjectTask{ProjectID: project.ID, Text: "t"})
	require.NoError(err)
	require.NoError(repo.UpsertRating(ctx, model.FactorRating{ProjectID: project.ID, FactorID: "F1", Score: 5}))

	require.NoError(repo.DeleteProject(ctx, project.ID))

	tasks, err := repo.ListProjectTasks(ctx, project.ID)
	require.NoError(err)
	assert.Empty(tasks)

	count, err = repo.CountProjects(ctx, org.ID)
	require.NoError(err)
	assert.Equal(1, count)
}
