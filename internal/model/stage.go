package model

import (
	"fmt"
	"strings"
)

// Stage represents one of the four delivery stages a task belongs to.
type Stage string

const (
	// StageIdentification is the first stage, where the work is identified.
	StageIdentification Stage = "identification"
	// StageDefinition is the stage where the work is shaped and planned.
	StageDefinition Stage = "definition"
	// StageDelivery is the stage where the work is executed.
	StageDelivery Stage = "delivery"
	// StageClosure is the final stage, where the work is wrapped up.
	StageClosure Stage = "closure"
)

// Stages returns the delivery stages in their canonical order.
func Stages() []Stage {
	return []Stage{StageIdentification, StageDefinition, StageDelivery, StageClosure}
}

// Title returns the stage name as used by the catalog wire format
// (e.g. "Identification").
func (s Stage) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[0])) + string(s[1:])
}

// ParseStage parses a stage name case-insensitively.
func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "identification":
		return StageIdentification, nil
	case "definition":
		return StageDefinition, nil
	case "delivery":
		return StageDelivery, nil
	case "closure":
		return StageClosure, nil
	default:
		return "", fmt.Errorf("unknown stage %q: %w", s, ErrNotValid)
	}
}

// NormalizeStage maps any stage string to a valid stage, falling back to
// identification for empty or unknown values. The fallback keeps tasks with a
// corrupt stage visible instead of silently dropping them.
func NormalizeStage(s string) Stage {
	stage, err := ParseStage(s)
	if err != nil {
		return StageIdentification
	}
	return stage
}
