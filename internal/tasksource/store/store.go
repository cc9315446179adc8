// Package store adapts a task repository into a task source for local and
// server side reconciliation.
package store

import (
	"context"
	"fmt"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/storage"
)

// SourceConfig is the configuration for the repository backed task source.
type SourceConfig struct {
	Repository storage.TaskRepository
	Logger     log.Logger
}

func (c *SourceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Source serves tasks straight from a repository.
type Source struct {
	repo   storage.TaskRepository
	logger log.Logger
}

// NewSource creates a new repository backed task source.
func NewSource(cfg SourceConfig) (*Source, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Source{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// ListTasks returns the persisted tasks of a project.
func (s *Source) ListTasks(ctx context.Context, projectID string) ([]model.ProjectTask, error) {
	return s.repo.ListProjectTasks(ctx, projectID)
}

// CreateTask normalizes, validates and persists a new task. The repository
// assigns the id.
func (s *Source) CreateTask(ctx context.Context, t model.ProjectTask) (*model.ProjectTask, error) {
	t.Normalize()
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return s.repo.CreateTask(ctx, t)
}

// UpdateTask validates and applies a partial update.
func (s *Source) UpdateTask(ctx context.Context, projectID, taskID string, u model.TaskUpdate) (*model.ProjectTask, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateTask(ctx, projectID, taskID, u)
}

// DeleteTask deletes a persisted task.
func (s *Source) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return s.repo.DeleteTask(ctx, projectID, taskID)
}
