package model

import (
	"fmt"
	"time"
)

// SuccessFactor is a catalog entry holding the recommended tasks for each
// delivery stage. Factors are reference data shared by every project.
type SuccessFactor struct {
	ID          string             `json:"id" validate:"required"`
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description,omitempty"`
	Tasks       map[Stage][]string `json:"tasks"`
}

// Validate validates the success factor.
func (f *SuccessFactor) Validate() error {
	if err := ValidateStruct(f); err != nil {
		return fmt.Errorf("invalid success factor: %w", err)
	}

	for stage := range f.Tasks {
		if _, err := ParseStage(string(stage)); err != nil {
			return fmt.Errorf("invalid success factor %q: %w", f.ID, err)
		}
	}

	return nil
}

// TaskCount returns the number of recommended tasks across all stages.
func (f SuccessFactor) TaskCount() int {
	n := 0
	for _, tasks := range f.Tasks {
		n += len(tasks)
	}
	return n
}

// Heuristic is a preset heuristic users can map into a project as a task.
type Heuristic struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate validates the heuristic.
func (h *Heuristic) Validate() error {
	if err := ValidateStruct(h); err != nil {
		return fmt.Errorf("invalid heuristic: %w", err)
	}
	return nil
}
