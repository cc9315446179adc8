package lib

import (
	"context"
	"fmt"

	"github.com/Greg-CLD/tcof/internal/model"
)

// CreateProject creates a new project. Name is required.
func (c *Client) CreateProject(ctx context.Context, name, description string) (*Project, error) {
	org, err := c.ensureOrg(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	p := model.Project{
		OrgID:       org.ID,
		Name:        name,
		Description: description,
	}
	if err := p.Validate(); err != nil {
		return nil, mapError(err)
	}

	created, err := c.repo.CreateProject(ctx, p)
	if err != nil {
		return nil, mapError(fmt.Errorf("could not create project: %w", err))
	}

	result := fromInternalProject(*created)
	return &result, nil
}

// GetProject retrieves a project by id.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	p, err := c.getProject(ctx, projectID)
	if err != nil {
		return nil, mapError(err)
	}

	result := fromInternalProject(*p)
	return &result, nil
}

// ListProjects lists every project in the database.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	org, err := c.ensureOrg(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	projects, err := c.repo.ListProjects(ctx, org.ID)
	if err != nil {
		return nil, mapError(fmt.Errorf("could not list projects: %w", err))
	}

	return fromInternalProjectList(projects), nil
}

// DeleteProject deletes a project together with its tasks and ratings.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	if _, err := c.getProject(ctx, projectID); err != nil {
		return mapError(err)
	}

	if err := c.repo.DeleteProject(ctx, projectID); err != nil {
		return mapError(fmt.Errorf("could not delete project: %w", err))
	}

	return nil
}
