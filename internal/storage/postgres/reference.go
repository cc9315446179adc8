package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Greg-CLD/tcof/internal/model"
)

// ListFactors returns every success factor in catalog order.
func (r *Repository) ListFactors(ctx context.Context) ([]model.SuccessFactor, error) {
	query := `SELECT id, title, description, tasks_json FROM factors ORDER BY position, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query factors: %w", err)
	}
	defer rows.Close()

	factors := []model.SuccessFactor{}
	for rows.Next() {
		var f model.SuccessFactor
		var tasksJSON string
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &tasksJSON); err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(tasksJSON), &f.Tasks); err != nil {
			return nil, fmt.Errorf("could not unmarshal factor tasks: %w", err)
		}
		factors = append(factors, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return factors, nil
}

// SaveFactor creates or replaces a success factor, keeping its catalog
// position when it already exists.
func (r *Repository) SaveFactor(ctx context.Context, f model.SuccessFactor) error {
	if f.ID == "" {
		return fmt.Errorf("factor id is required: %w", model.ErrNotValid)
	}

	tasksJSON, err := json.Marshal(f.Tasks)
	if err != nil {
		return fmt.Errorf("could not marshal factor tasks: %w", err)
	}

	query := `
		INSERT INTO factors (id, title, description, tasks_json, position)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position), 0) + 1 FROM factors))
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			tasks_json = EXCLUDED.tasks_json
	`

	if _, err := r.db.ExecContext(ctx, query, f.ID, f.Title, f.Description, string(tasksJSON)); err != nil {
		return fmt.Errorf("could not save factor: %w", err)
	}

	r.logger.Debugf("Saved factor in repository: %s", f.ID)
	return nil
}

// DeleteFactor deletes a success factor.
func (r *Repository) DeleteFactor(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM factors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete factor: %w", err)
	}

	rows, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("factor %s: %w", id, model.ErrNotFound)
	}

	return nil
}

// ListHeuristics returns every preset heuristic ordered by id.
func (r *Repository) ListHeuristics(ctx context.Context) ([]model.Heuristic, error) {
	query := `SELECT id, title, description, created_at, updated_at FROM heuristics ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query heuristics: %w", err)
	}
	defer rows.Close()

	heuristics := []model.Heuristic{}
	for rows.Next() {
		var h model.Heuristic
		var createdAt, updatedAt int64
		if err := rows.Scan(&h.ID, &h.Title, &h.Description, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		h.CreatedAt = timeFromUnix(createdAt)
		h.UpdatedAt = timeFromUnix(updatedAt)
		heuristics = append(heuristics, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return heuristics, nil
}

// SaveHeuristic creates or replaces a preset heuristic, keeping the original
// creation timestamp on replace.
func (r *Repository) SaveHeuristic(ctx context.Context, h model.Heuristic) error {
	if h.ID == "" {
		return fmt.Errorf("heuristic id is required: %w", model.ErrNotValid)
	}

	now := time.Now().UTC().Unix()
	query := `
		INSERT INTO heuristics (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, h.ID, h.Title, h.Description, now, now); err != nil {
		return fmt.Errorf("could not save heuristic: %w", err)
	}

	return nil
}

// DeleteHeuristic deletes a preset heuristic.
func (r *Repository) DeleteHeuristic(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM heuristics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("could not delete heuristic: %w", err)
	}

	rows, err := rowsAffected(result)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("heuristic %s: %w", id, model.ErrNotFound)
	}

	return nil
}

// UpsertRating creates or replaces the rating of a factor on a project.
func (r *Repository) UpsertRating(ctx context.Context, rating model.FactorRating) error {
	query := `
		INSERT INTO ratings (project_id, factor_id, score, note, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (project_id, factor_id) DO UPDATE SET
			score = EXCLUDED.score,
			note = EXCLUDED.note,
			updated_at = EXCLUDED.updated_at
	`

	now := time.Now().UTC().Unix()
	if _, err := r.db.ExecContext(ctx, query, rating.ProjectID, rating.FactorID, rating.Score, rating.Note, now); err != nil {
		return fmt.Errorf("could not upsert rating: %w", err)
	}

	return nil
}

// ListProjectRatings returns every rating of a project ordered by factor id.
func (r *Repository) ListProjectRatings(ctx context.Context, projectID string) ([]model.FactorRating, error) {
	query := `SELECT project_id, factor_id, score, note, updated_at FROM ratings WHERE project_id = $1 ORDER BY factor_id`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not query ratings: %w", err)
	}
	defer rows.Close()

	ratings := []model.FactorRating{}
	for rows.Next() {
		var rating model.FactorRating
		var updatedAt int64
		if err := rows.Scan(&rating.ProjectID, &rating.FactorID, &rating.Score, &rating.Note, &updatedAt); err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		rating.UpdatedAt = timeFromUnix(updatedAt)
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return ratings, nil
}
