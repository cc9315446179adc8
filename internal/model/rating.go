package model

import (
	"fmt"
	"time"
)

// FactorRating is a per-project confidence rating for a success factor,
// scored from 1 (no confidence) to 10 (fully confident).
type FactorRating struct {
	ProjectID string    `json:"projectId" validate:"required"`
	FactorID  string    `json:"factorId" validate:"required"`
	Score     int       `json:"score" validate:"min=1,max=10"`
	Note      string    `json:"note,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate validates the rating.
func (r *FactorRating) Validate() error {
	if err := ValidateStruct(r); err != nil {
		return fmt.Errorf("invalid rating: %w", err)
	}
	return nil
}
