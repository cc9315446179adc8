package storage

import (
	"context"

	"github.com/Greg-CLD/tcof/internal/model"
)

// TaskRepository is the interface for project task persistence.
type TaskRepository interface {
	CreateTask(ctx context.Context, t model.ProjectTask) (*model.ProjectTask, error)
	GetTask(ctx context.Context, projectID, taskID string) (*model.ProjectTask, error)
	ListProjectTasks(ctx context.Context, projectID string) ([]model.ProjectTask, error)
	UpdateTask(ctx context.Context, projectID, taskID string, u model.TaskUpdate) (*model.ProjectTask, error)
	DeleteTask(ctx context.Context, projectID, taskID string) error
	DeleteProjectTasks(ctx context.Context, projectID string) error
}

// ProjectRepository is the interface for project persistence.
type ProjectRepository interface {
	CreateProject(ctx context.Context, p model.Project) (*model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	ListProjects(ctx context.Context, orgID string) ([]model.Project, error)
	CountProjects(ctx context.Context, orgID string) (int, error)
	DeleteProject(ctx context.Context, id string) error
}

// OrgRepository is the interface for organisation persistence.
type OrgRepository interface {
	CreateOrganisation(ctx context.Context, o model.Organisation) (*model.Organisation, error)
	GetOrganisation(ctx context.Context, id string) (*model.Organisation, error)
	ListOrganisations(ctx context.Context) ([]model.Organisation, error)
	UpdateOrganisationPlan(ctx context.Context, id string, plan model.Plan) error
}

// UserRepository is the interface for user and session persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, u model.User) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateSession(ctx context.Context, s model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// ReferenceRepository is the interface for the shared reference data, the
// success factor catalog and the preset heuristics.
type ReferenceRepository interface {
	ListFactors(ctx context.Context) ([]model.SuccessFactor, error)
	SaveFactor(ctx context.Context, f model.SuccessFactor) error
	DeleteFactor(ctx context.Context, id string) error
	ListHeuristics(ctx context.Context) ([]model.Heuristic, error)
	SaveHeuristic(ctx context.Context, h model.Heuristic) error
	DeleteHeuristic(ctx context.Context, id string) error
}

// RatingRepository is the interface for success factor rating persistence.
type RatingRepository interface {
	UpsertRating(ctx context.Context, r model.FactorRating) error
	ListProjectRatings(ctx context.Context, projectID string) ([]model.FactorRating, error)
}

// Repository groups every repository the application persists through.
type Repository interface {
	TaskRepository
	ProjectRepository
	OrgRepository
	UserRepository
	ReferenceRepository
	RatingRepository
}
