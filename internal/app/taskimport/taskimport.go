// Package taskimport turns spreadsheet CSV rows into stored project tasks.
package taskimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/storage"
)

// ServiceConfig is the configuration for the import service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Service imports tasks from CSV rows.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new import service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the import request parameters. Rows are
// `text,stage[,notes][,priority]`, an optional header row is skipped.
type Request struct {
	ProjectID string
	// Origin tags where the imported tasks came from, policy or framework.
	// Empty defaults to policy.
	Origin model.Origin
	Reader io.Reader
}

// SkippedRow is a row the import refused and the reason why.
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result reports what the import did.
type Result struct {
	Created []model.ProjectTask `json:"created"`
	Skipped []SkippedRow        `json:"skipped"`
}

// Run parses the CSV rows and stores one task per row. Rows without a task
// text are skipped and reported, an unknown stage falls back to
// identification like everywhere else.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	if req.ProjectID == "" {
		return nil, fmt.Errorf("project id is required: %w", model.ErrNotValid)
	}
	if req.Reader == nil {
		return nil, fmt.Errorf("reader is required: %w", model.ErrNotValid)
	}

	origin := req.Origin
	if origin == "" {
		origin = model.OriginPolicy
	}
	if origin != model.OriginPolicy && origin != model.OriginFramework {
		return nil, fmt.Errorf("import origin must be policy or framework: %w", model.ErrNotValid)
	}

	if _, err := s.repo.GetProject(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}

	reader := csv.NewReader(req.Reader)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &Result{
		Created: []model.ProjectTask{},
		Skipped: []SkippedRow{},
	}

	line := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not parse CSV: %v: %w", err, model.ErrNotValid)
		}
		line++

		if line == 1 && looksLikeHeader(row) {
			continue
		}

		text := ""
		if len(row) > 0 {
			text = strings.TrimSpace(row[0])
		}
		if text == "" {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: "empty task text"})
			continue
		}

		task := model.ProjectTask{
			ProjectID: req.ProjectID,
			Text:      text,
			Origin:    origin,
		}
		if len(row) > 1 {
			task.Stage = model.NormalizeStage(row[1])
		}
		if len(row) > 2 {
			task.Notes = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			if priority, err := model.ParsePriority(row[3]); err == nil {
				task.Priority = priority
			}
		}

		task.Normalize()
		if err := task.Validate(); err != nil {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: err.Error()})
			continue
		}

		created, err := s.repo.CreateTask(ctx, task)
		if err != nil {
			return nil, fmt.Errorf("could not store task from line %d: %w", line, err)
		}
		result.Created = append(result.Created, *created)
	}

	s.logger.WithValues(log.Kv{"project": req.ProjectID}).Infof("Imported %d tasks, skipped %d rows", len(result.Created), len(result.Skipped))

	return result, nil
}

func looksLikeHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "text")
}
