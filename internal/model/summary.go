package model

import "time"

// StageSummary aggregates the checklist tasks of a single stage.
type StageSummary struct {
	Stage     Stage `json:"stage"`
	Total     int   `json:"total"`
	Completed int   `json:"completed"`
}

// ProjectSummary is the dashboard aggregate of a project checklist.
type ProjectSummary struct {
	ProjectID   string         `json:"projectId"`
	Stages      []StageSummary `json:"stages"`
	TotalTasks  int            `json:"totalTasks"`
	DoneTasks   int            `json:"doneTasks"`
	Completion  float64        `json:"completion"`
	RatingCount int            `json:"ratingCount"`
	RatingAvg   float64        `json:"ratingAvg"`
	GeneratedAt time.Time      `json:"generatedAt"`
}
