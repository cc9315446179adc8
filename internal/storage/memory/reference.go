package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/Greg-CLD/tcof/internal/model"
)

// ListFactors returns every success factor in insertion order.
func (r *Repository) ListFactors(ctx context.Context) ([]model.SuccessFactor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factors := make([]model.SuccessFactor, 0, len(r.factorIDs))
	for _, id := range r.factorIDs {
		factors = append(factors, copyFactor(r.factors[id]))
	}

	return factors, nil
}

// SaveFactor creates or replaces a success factor.
func (r *Repository) SaveFactor(ctx context.Context, f model.SuccessFactor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.ID == "" {
		return fmt.Errorf("factor id is required: %w", model.ErrNotValid)
	}

	if _, ok := r.factors[f.ID]; !ok {
		r.factorIDs = append(r.factorIDs, f.ID)
	}
	r.factors[f.ID] = copyFactor(f)

	r.logger.Debugf("Saved factor in repository: %s", f.ID)

	return nil
}

// DeleteFactor deletes a success factor.
func (r *Repository) DeleteFactor(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factors[id]; !ok {
		return fmt.Errorf("factor %s: %w", id, model.ErrNotFound)
	}

	delete(r.factors, id)
	for i, fid := range r.factorIDs {
		if fid == id {
			r.factorIDs = append(r.factorIDs[:i], r.factorIDs[i+1:]...)
			break
		}
	}

	return nil
}

// ListHeuristics returns every preset heuristic ordered by id.
func (r *Repository) ListHeuristics(ctx context.Context) ([]model.Heuristic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	heuristics := make([]model.Heuristic, 0, len(r.heuristics))
	for _, h := range r.heuristics {
		heuristics = append(heuristics, h)
	}

	sort.Slice(heuristics, func(i, j int) bool { return heuristics[i].ID < heuristics[j].ID })

	return heuristics, nil
}

// SaveHeuristic creates or replaces a preset heuristic.
func (r *Repository) SaveHeuristic(ctx context.Context, h model.Heuristic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h.ID == "" {
		return fmt.Errorf("heuristic id is required: %w", model.ErrNotValid)
	}

	ts := now()
	if existing, ok := r.heuristics[h.ID]; ok {
		h.CreatedAt = existing.CreatedAt
	} else {
		h.CreatedAt = ts
	}
	h.UpdatedAt = ts
	r.heuristics[h.ID] = h

	return nil
}

// DeleteHeuristic deletes a preset heuristic.
func (r *Repository) DeleteHeuristic(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.heuristics[id]; !ok {
		return fmt.Errorf("heuristic %s: %w", id, model.ErrNotFound)
	}

	delete(r.heuristics, id)
	return nil
}

// UpsertRating creates or replaces the rating of a factor on a project.
func (r *Repository) UpsertRating(ctx context.Context, rating model.FactorRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	projectRatings, ok := r.ratings[rating.ProjectID]
	if !ok {
		projectRatings = map[string]model.FactorRating{}
		r.ratings[rating.ProjectID] = projectRatings
	}

	rating.UpdatedAt = now()
	projectRatings[rating.FactorID] = rating

	return nil
}

// ListProjectRatings returns every rating of a project ordered by factor id.
func (r *Repository) ListProjectRatings(ctx context.Context, projectID string) ([]model.FactorRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ratings := make([]model.FactorRating, 0, len(r.ratings[projectID]))
	for _, rating := range r.ratings[projectID] {
		ratings = append(ratings, rating)
	}

	sort.Slice(ratings, func(i, j int) bool { return ratings[i].FactorID < ratings[j].FactorID })

	return ratings, nil
}

func copyFactor(f model.SuccessFactor) model.SuccessFactor {
	tasks := make(map[model.Stage][]string, len(f.Tasks))
	for stage, stageTasks := range f.Tasks {
		tasks[stage] = append([]string{}, stageTasks...)
	}
	f.Tasks = tasks
	return f
}
