package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Greg-CLD/tcof/internal/model"
)

const taskColumns = `
	id, project_id, text, completed, stage, origin, source_id,
	notes, priority, due_date, owner, status, created_at, updated_at
`

// CreateTask creates a new task on a project, assigning an id when the task
// carries none.
func (r *Repository) CreateTask(ctx context.Context, t model.ProjectTask) (*model.ProjectTask, error) {
	if t.ProjectID == "" {
		return nil, fmt.Errorf("project id is required: %w", model.ErrNotValid)
	}

	if t.ID == "" {
		t.ID = ulid.Make().String()
	}

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	var dueDate *int64
	if t.DueDate != nil {
		u := t.DueDate.Unix()
		dueDate = &u
	}

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		t.ID,
		t.ProjectID,
		t.Text,
		boolToInt(t.Completed),
		t.Stage,
		t.Origin,
		t.SourceID,
		t.Notes,
		t.Priority,
		dueDate,
		t.Owner,
		t.Status,
		t.CreatedAt.Unix(),
		t.UpdatedAt.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("task already exists: %w", model.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("could not insert task: %w", err)
	}

	r.logger.Debugf("Created task in repository: %s", t.ID)

	t.CreatedAt = timeFromUnix(t.CreatedAt.Unix())
	t.UpdatedAt = timeFromUnix(t.UpdatedAt.Unix())
	return &t, nil
}

// GetTask retrieves a task of a project by id.
func (r *Repository) GetTask(ctx context.Context, projectID, taskID string) (*model.ProjectTask, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? AND id = ?`

	row := r.db.QueryRowContext(ctx, query, projectID, taskID)
	task, err := r.scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query task: %w", err)
	}

	return &task, nil
}

// ListProjectTasks returns every task of a project ordered by creation.
func (r *Repository) ListProjectTasks(ctx context.Context, projectID string) ([]model.ProjectTask, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.ProjectTask{}
	for rows.Next() {
		task, err := r.scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies a partial update on a task and returns the result. The
// row is read and rewritten inside a transaction so the status and completed
// flag stay coherent.
func (r *Repository) UpdateTask(ctx context.Context, projectID, taskID string, u model.TaskUpdate) (*model.ProjectTask, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // Rollback is safe to call after Commit

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? AND id = ?`
	task, err := r.scanTask(tx.QueryRowContext(ctx, query, projectID, taskID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query task: %w", err)
	}

	u.ApplyTo(&task)
	task.UpdatedAt = time.Now().UTC()

	var dueDate *int64
	if task.DueDate != nil {
		unix := task.DueDate.Unix()
		dueDate = &unix
	}

	updateQuery := `
		UPDATE tasks
		SET
			text = ?,
			completed = ?,
			stage = ?,
			origin = ?,
			source_id = ?,
			notes = ?,
			priority = ?,
			due_date = ?,
			owner = ?,
			status = ?,
			updated_at = ?
		WHERE project_id = ? AND id = ?
	`

	_, err = tx.ExecContext(
		ctx,
		updateQuery,
		task.Text,
		boolToInt(task.Completed),
		task.Stage,
		task.Origin,
		task.SourceID,
		task.Notes,
		task.Priority,
		dueDate,
		task.Owner,
		task.Status,
		task.UpdatedAt.Unix(),
		projectID,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	r.logger.Debugf("Updated task in repository: %s", taskID)

	task.UpdatedAt = timeFromUnix(task.UpdatedAt.Unix())
	return &task, nil
}

// DeleteTask deletes a task of a project.
func (r *Repository) DeleteTask(ctx context.Context, projectID, taskID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ? AND id = ?`, projectID, taskID)
	if err != nil {
		return fmt.Errorf("could not delete task: %w", err)
	}

	rows, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("task %s: %w", taskID, model.ErrNotFound)
	}

	r.logger.Debugf("Deleted task from repository: %s", taskID)
	return nil
}

// DeleteProjectTasks deletes every task of a project.
func (r *Repository) DeleteProjectTasks(ctx context.Context, projectID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("could not delete project tasks: %w", err)
	}
	return nil
}

func (r *Repository) scanTask(s scanner) (model.ProjectTask, error) {
	var task model.ProjectTask
	var completed int64
	var dueDate sql.NullInt64
	var createdAt, updatedAt int64

	err := s.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Text,
		&completed,
		&task.Stage,
		&task.Origin,
		&task.SourceID,
		&task.Notes,
		&task.Priority,
		&dueDate,
		&task.Owner,
		&task.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.ProjectTask{}, err
	}

	task.Completed = completed != 0
	if dueDate.Valid {
		t := timeFromUnix(dueDate.Int64)
		task.DueDate = &t
	}
	task.CreatedAt = timeFromUnix(createdAt)
	task.UpdatedAt = timeFromUnix(updatedAt)

	return task, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
