// Package tasksource defines where persisted project tasks live. The
// reconciliation engine only ever talks to a Source, never to a concrete
// store or API client.
package tasksource

import (
	"context"

	"github.com/Greg-CLD/tcof/internal/model"
)

// Source is the persistence boundary for project tasks.
type Source interface {
	ListTasks(ctx context.Context, projectID string) ([]model.ProjectTask, error)
	CreateTask(ctx context.Context, t model.ProjectTask) (*model.ProjectTask, error)
	UpdateTask(ctx context.Context, projectID, taskID string, u model.TaskUpdate) (*model.ProjectTask, error)
	DeleteTask(ctx context.Context, projectID, taskID string) error
}
