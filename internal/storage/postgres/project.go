package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Greg-CLD/tcof/internal/model"
)

// CreateProject creates a new project.
func (r *Repository) CreateProject(ctx context.Context, p model.Project) (*model.Project, error) {
	if p.ID == "" {
		p.ID = ulid.Make().String()
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO projects (id, org_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query, p.ID, p.OrgID, p.Name, p.Description, p.CreatedAt.Unix(), p.UpdatedAt.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("project already exists: %w", model.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("could not insert project: %w", err)
	}

	r.logger.Debugf("Created project in repository: %s", p.ID)

	p.CreatedAt = timeFromUnix(p.CreatedAt.Unix())
	p.UpdatedAt = timeFromUnix(p.UpdatedAt.Unix())
	return &p, nil
}

// GetProject retrieves a project by id.
func (r *Repository) GetProject(ctx context.Context, id string) (*model.Project, error) {
	query := `
		SELECT id, org_id, name, description, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	project, err := r.scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query project: %w", err)
	}

	return &project, nil
}

// ListProjects returns the projects of an organisation, or every project
// when the organisation id is empty.
func (r *Repository) ListProjects(ctx context.Context, orgID string) ([]model.Project, error) {
	query := `
		SELECT id, org_id, name, description, created_at, updated_at
		FROM projects
	`
	args := []any{}
	if orgID != "" {
		query += ` WHERE org_id = $1`
		args = append(args, orgID)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		project, err := r.scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return projects, nil
}

// CountProjects counts the projects of an organisation.
func (r *Repository) CountProjects(ctx context.Context, orgID string) (int, error) {
	query := `SELECT COUNT(*) FROM projects`
	args := []any{}
	if orgID != "" {
		query += ` WHERE org_id = $1`
		args = append(args, orgID)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("could not count projects: %w", err)
	}

	return n, nil
}

// DeleteProject deletes a project and its tasks and ratings.
func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // Rollback is safe to call after Commit

	result, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete project: %w", err)
	}

	rows, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("project %s: %w", id, model.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = $1`, id); err != nil {
		return fmt.Errorf("could not delete project tasks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ratings WHERE project_id = $1`, id); err != nil {
		return fmt.Errorf("could not delete project ratings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	r.logger.Debugf("Deleted project from repository: %s", id)
	return nil
}

func (r *Repository) scanProject(s scanner) (model.Project, error) {
	var project model.Project
	var createdAt, updatedAt int64

	err := s.Scan(
		&project.ID,
		&project.OrgID,
		&project.Name,
		&project.Description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.Project{}, err
	}

	project.CreatedAt = timeFromUnix(createdAt)
	project.UpdatedAt = timeFromUnix(updatedAt)

	return project, nil
}
