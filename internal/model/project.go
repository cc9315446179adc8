package model

import (
	"fmt"
	"time"
)

// Project represents a delivery project that owns tasks and ratings.
type Project struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"orgId" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate validates the project.
func (p *Project) Validate() error {
	if err := ValidateStruct(p); err != nil {
		return fmt.Errorf("invalid project: %w", err)
	}
	return nil
}

// ProjectContext identifies the project a checklist operation acts on. It is
// resolved once by the caller and passed down explicitly instead of being
// read from ambient state.
type ProjectContext struct {
	ProjectID string
}

// Empty returns true when no project is selected.
func (c ProjectContext) Empty() bool {
	return c.ProjectID == ""
}

// Validate validates the project context.
func (c ProjectContext) Validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("project id is required: %w", ErrNotValid)
	}
	return nil
}
