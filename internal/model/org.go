package model

import (
	"fmt"
	"strings"
	"time"
)

// Plan represents the billing plan of an organisation.
type Plan string

const (
	// PlanFree is the default plan, limited to FreePlanMaxProjects projects
	// and without CSV export.
	PlanFree Plan = "free"
	// PlanPro removes the free plan limits.
	PlanPro Plan = "pro"
)

// FreePlanMaxProjects is the number of projects a free organisation can hold.
const FreePlanMaxProjects = 3

// ParsePlan parses a billing plan name.
func ParsePlan(s string) (Plan, error) {
	switch Plan(strings.ToLower(strings.TrimSpace(s))) {
	case PlanFree:
		return PlanFree, nil
	case PlanPro:
		return PlanPro, nil
	default:
		return "", fmt.Errorf("unknown plan %q: %w", s, ErrNotValid)
	}
}

// Organisation groups users and projects under a billing plan.
type Organisation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Plan      Plan      `json:"plan" validate:"omitempty,oneof=free pro"`
	CreatedAt time.Time `json:"createdAt"`
}

// Normalize fills defaulted fields.
func (o *Organisation) Normalize() {
	if o.Plan == "" {
		o.Plan = PlanFree
	}
}

// Validate validates the organisation.
func (o *Organisation) Validate() error {
	if err := ValidateStruct(o); err != nil {
		return fmt.Errorf("invalid organisation: %w", err)
	}
	return nil
}

// CanAddProject returns whether the plan allows one more project given the
// current count.
func (o Organisation) CanAddProject(current int) bool {
	if o.Plan == PlanPro {
		return true
	}
	return current < FreePlanMaxProjects
}

// CanExport returns whether the plan includes CSV export.
func (o Organisation) CanExport() bool {
	return o.Plan == PlanPro
}
