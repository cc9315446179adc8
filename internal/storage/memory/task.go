package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/oklog/ulid/v2"

	"github.com/Greg-CLD/tcof/internal/model"
)

// CreateTask creates a new task on a project, assigning an id when the task
// carries none.
func (r *Repository) CreateTask(ctx context.Context, t model.ProjectTask) (*model.ProjectTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.ProjectID == "" {
		return nil, fmt.Errorf("project id is required: %w", model.ErrNotValid)
	}

	if t.ID == "" {
		t.ID = ulid.Make().String()
	}

	projectTasks, ok := r.tasks[t.ProjectID]
	if !ok {
		projectTasks = map[string]model.ProjectTask{}
		r.tasks[t.ProjectID] = projectTasks
	}

	if _, ok := projectTasks[t.ID]; ok {
		return nil, fmt.Errorf("task with id %s: %w", t.ID, model.ErrAlreadyExists)
	}

	ts := now()
	t.CreatedAt = ts
	t.UpdatedAt = ts
	projectTasks[t.ID] = t

	r.logger.Debugf("Created task in repository: %s", t.ID)

	taskCopy := t
	return &taskCopy, nil
}

// GetTask retrieves a task of a project by id.
func (r *Repository) GetTask(ctx context.Context, projectID, taskID string) (*model.ProjectTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[projectID][taskID]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
	}

	taskCopy := task
	return &taskCopy, nil
}

// ListProjectTasks returns every task of a project ordered by creation.
func (r *Repository) ListProjectTasks(ctx context.Context, projectID string) ([]model.ProjectTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.ProjectTask, 0, len(r.tasks[projectID]))
	for _, t := range r.tasks[projectID] {
		tasks = append(tasks, t)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	return tasks, nil
}

// UpdateTask applies a partial update on a task and returns the result.
func (r *Repository) UpdateTask(ctx context.Context, projectID, taskID string, u model.TaskUpdate) (*model.ProjectTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[projectID][taskID]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
	}

	u.ApplyTo(&task)
	task.UpdatedAt = now()
	r.tasks[projectID][taskID] = task

	r.logger.Debugf("Updated task in repository: %s", taskID)

	taskCopy := task
	return &taskCopy, nil
}

// DeleteTask deletes a task of a project.
func (r *Repository) DeleteTask(ctx context.Context, projectID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[projectID][taskID]; !ok {
		return fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
	}

	delete(r.tasks[projectID], taskID)
	r.logger.Debugf("Deleted task from repository: %s", taskID)

	return nil
}

// DeleteProjectTasks deletes every task of a project.
func (r *Repository) DeleteProjectTasks(ctx context.Context, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tasks, projectID)
	return nil
}
