package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/oklog/ulid/v2"

	"github.com/Greg-CLD/tcof/internal/model"
)

// CreateProject creates a new project.
func (r *Repository) CreateProject(ctx context.Context, p model.Project) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = ulid.Make().String()
	}

	if _, ok := r.projects[p.ID]; ok {
		return nil, fmt.Errorf("project with id %s: %w", p.ID, model.ErrAlreadyExists)
	}

	ts := now()
	p.CreatedAt = ts
	p.UpdatedAt = ts
	r.projects[p.ID] = p

	r.logger.Debugf("Created project in repository: %s", p.ID)

	projectCopy := p
	return &projectCopy, nil
}

// GetProject retrieves a project by id.
func (r *Repository) GetProject(ctx context.Context, id string) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, model.ErrNotFound)
	}

	projectCopy := project
	return &projectCopy, nil
}

// ListProjects returns the projects of an organisation, or every project
// when the organisation id is empty.
func (r *Repository) ListProjects(ctx context.Context, orgID string) ([]model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := []model.Project{}
	for _, p := range r.projects {
		if orgID != "" && p.OrgID != orgID {
			continue
		}
		projects = append(projects, p)
	}

	sort.Slice(projects, func(i, j int) bool {
		if projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].ID < projects[j].ID
		}
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})

	return projects, nil
}

// CountProjects counts the projects of an organisation.
func (r *Repository) CountProjects(ctx context.Context, orgID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, p := range r.projects {
		if orgID == "" || p.OrgID == orgID {
			n++
		}
	}

	return n, nil
}

// DeleteProject deletes a project and its tasks and ratings.
func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return fmt.Errorf("project %s: %w", id, model.ErrNotFound)
	}

	delete(r.projects, id)
	delete(r.tasks, id)
	delete(r.ratings, id)

	r.logger.Debugf("Deleted project from repository: %s", id)

	return nil
}
