// Package catalog provides the canonical success factor catalog that seeds
// every project checklist, together with the sources it can be loaded from.
package catalog

import (
	"context"
	"fmt"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
	"github.com/Greg-CLD/tcof/internal/storage"
)

// Source provides the success factor catalog.
type Source interface {
	Factors(ctx context.Context) ([]model.SuccessFactor, error)
}

// StoreSourceConfig is the configuration for the repository backed source.
type StoreSourceConfig struct {
	Repository storage.ReferenceRepository
	Logger     log.Logger
}

func (c *StoreSourceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// StoreSource serves the catalog from the reference repository, so admin
// edits to factors are visible without a restart.
type StoreSource struct {
	repo   storage.ReferenceRepository
	logger log.Logger
}

// NewStoreSource creates a new repository backed catalog source.
func NewStoreSource(cfg StoreSourceConfig) (*StoreSource, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &StoreSource{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Factors satisfies the Source interface.
func (s *StoreSource) Factors(ctx context.Context) ([]model.SuccessFactor, error) {
	factors, err := s.repo.ListFactors(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list factors: %w", err)
	}

	return factors, nil
}
