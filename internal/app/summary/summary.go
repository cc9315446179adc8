// Package summary computes the dashboard aggregate of a project checklist.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/Greg-CLD/tcof/internal/catalog"
	"github.com/Greg-CLD/tcof/internal/checklist"
	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/storage"
)

// ServiceConfig is the configuration for the summary service.
type ServiceConfig struct {
	Repository storage.Repository
	Catalog    catalog.Source
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Catalog == nil {
		return fmt.Errorf("catalog source is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service computes project summaries.
type Service struct {
	repo    storage.Repository
	catalog catalog.Source
	logger  log.Logger
}

// NewService creates a new summary service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:    cfg.Repository,
		catalog: cfg.Catalog,
		logger:  cfg.Logger,
	}, nil
}

// Request represents the summary request parameters.
type Request struct {
	ProjectID string
}

// Run merges the catalog with the persisted tasks the same way the
// reconciliation engine does and aggregates per stage totals, the overall
// completion percentage and the rating average.
func (s *Service) Run(ctx context.Context, req Request) (*model.ProjectSummary, error) {
	if req.ProjectID == "" {
		return nil, fmt.Errorf("project id is required: %w", model.ErrNotValid)
	}

	if _, err := s.repo.GetProject(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}

	factors, err := s.catalog.Factors(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load catalog: %w", err)
	}

	// An empty catalog reconciles to an empty checklist, the dashboard
	// mirrors that.
	cl := model.EmptyChecklist()
	canonical := catalog.Flatten(factors)
	if len(canonical) > 0 {
		tasks, err := s.repo.ListProjectTasks(ctx, req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("could not list tasks: %w", err)
		}
		cl = checklist.Partition(checklist.Merge(canonical, tasks))
	}

	sum := &model.ProjectSummary{
		ProjectID:   req.ProjectID,
		Stages:      make([]model.StageSummary, 0, len(model.Stages())),
		TotalTasks:  cl.Len(),
		DoneTasks:   cl.CompletedCount(),
		GeneratedAt: time.Now().UTC(),
	}

	for _, stage := range model.Stages() {
		bucket := cl.Stages[stage]
		completed := 0
		for _, task := range bucket {
			if task.Completed {
				completed++
			}
		}
		sum.Stages = append(sum.Stages, model.StageSummary{Stage: stage, Total: len(bucket), Completed: completed})
	}

	if sum.TotalTasks > 0 {
		sum.Completion = float64(sum.DoneTasks) / float64(sum.TotalTasks) * 100
	}

	ratings, err := s.repo.ListProjectRatings(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("could not list ratings: %w", err)
	}
	if len(ratings) > 0 {
		total := 0
		for _, r := range ratings {
			total += r.Score
		}
		sum.RatingCount = len(ratings)
		sum.RatingAvg = float64(total) / float64(len(ratings))
	}

	s.logger.Debugf("Summarized %d tasks for project %s", sum.TotalTasks, req.ProjectID)

	return sum, nil
}
