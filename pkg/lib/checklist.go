package lib

import (
	"context"
	"fmt"
	"io"

	"github.com/Greg-CLD/tcof/internal/checklist"
	"github.com/Greg-CLD/tcof/internal/export"
	"github.com/Greg-CLD/tcof/internal/model"
)

// Checklist reconciles and returns the checklist of a project, the catalog
// recommendations merged with the stored tasks and partitioned per delivery
// stage.
func (c *Client) Checklist(ctx context.Context, projectID string) (*Checklist, error) {
	cl, err := c.reconcile(ctx, projectID)
	if err != nil {
		return nil, err
	}

	result := fromInternalChecklist(cl)
	return &result, nil
}

// AddTask adds a custom task to a project and returns it with its assigned
// id.
func (c *Client) AddTask(ctx context.Context, projectID string, opts AddTaskOpts) (*Task, error) {
	if _, err := c.getProject(ctx, projectID); err != nil {
		return nil, mapError(err)
	}

	created, err := c.tasks.CreateTask(ctx, toInternalNewTask(projectID, opts))
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalTask(model.UnifiedFromProject(*created, true))
	return &result, nil
}

// UpdateTask applies a partial update to a checklist task. The first update
// of a catalog recommendation materializes it into a stored task that keeps
// a reference to the recommendation through SourceID; the returned task
// carries the newly assigned id.
func (c *Client) UpdateTask(ctx context.Context, projectID, taskID string, u TaskUpdate) (*Task, error) {
	eng, target, err := c.findTask(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	updated, err := eng.UpdateTask(ctx, taskID, toInternalUpdate(u), target.Stage, target.Origin)
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalTask(updated)
	return &result, nil
}

// CompleteTask marks a checklist task as done. Like [Client.UpdateTask] it
// materializes catalog recommendations on first touch.
func (c *Client) CompleteTask(ctx context.Context, projectID, taskID string) (*Task, error) {
	done := TaskStatusDone
	return c.UpdateTask(ctx, projectID, taskID, TaskUpdate{Status: &done})
}

// DeleteTask deletes a stored task. Catalog recommendations that were never
// edited have no stored record and are rejected with [ErrNotValid].
func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) error {
	eng, _, err := c.findTask(ctx, projectID, taskID)
	if err != nil {
		return err
	}

	if err := eng.DeleteTask(ctx, taskID); err != nil {
		return mapError(err)
	}

	return nil
}

// ExportCSV reconciles the checklist of a project and writes it to w as CSV,
// one row per task grouped by stage.
func (c *Client) ExportCSV(ctx context.Context, projectID string, w io.Writer) error {
	cl, err := c.reconcile(ctx, projectID)
	if err != nil {
		return err
	}

	if err := export.CSV(w, cl); err != nil {
		return mapError(fmt.Errorf("could not export checklist: %w", err))
	}

	return nil
}

// reconcile verifies the project and rebuilds its checklist.
func (c *Client) reconcile(ctx context.Context, projectID string) (model.Checklist, error) {
	if _, err := c.getProject(ctx, projectID); err != nil {
		return model.Checklist{}, mapError(err)
	}

	eng, err := c.newEngine(projectID)
	if err != nil {
		return model.Checklist{}, mapError(err)
	}

	cl, err := eng.Reconcile(ctx)
	if err != nil {
		return model.Checklist{}, mapError(err)
	}

	return cl, nil
}

// findTask reconciles the checklist and locates the task an edit targets.
// The returned engine holds the reconciled working copy the edit runs on.
func (c *Client) findTask(ctx context.Context, projectID, taskID string) (*checklist.Engine, model.UnifiedTask, error) {
	if _, err := c.getProject(ctx, projectID); err != nil {
		return nil, model.UnifiedTask{}, mapError(err)
	}

	eng, err := c.newEngine(projectID)
	if err != nil {
		return nil, model.UnifiedTask{}, mapError(err)
	}

	cl, err := eng.Reconcile(ctx)
	if err != nil {
		return nil, model.UnifiedTask{}, mapError(err)
	}

	target, ok := cl.Task(taskID)
	if !ok {
		return nil, model.UnifiedTask{}, mapError(fmt.Errorf("task %s is not on the checklist: %w", taskID, model.ErrNotFound))
	}

	return eng, target, nil
}
