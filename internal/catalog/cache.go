package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
)

// CacheConfig is the configuration for the catalog cache.
type CacheConfig struct {
	Source Source
	Logger log.Logger
}

func (c *CacheConfig) defaults() error {
	if c.Source == nil {
		return fmt.Errorf("source is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Cache serves the catalog from memory, loading it lazily on first use. A
// failed refresh keeps the previously loaded catalog.
type Cache struct {
	source Source
	logger log.Logger

	mu      sync.RWMutex
	factors []model.SuccessFactor
	loaded  bool
}

// NewCache creates a new catalog cache.
func NewCache(cfg CacheConfig) (*Cache, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Cache{
		source: cfg.Source,
		logger: cfg.Logger,
	}, nil
}

// Factors satisfies the Source interface.
func (c *Cache) Factors(ctx context.Context) ([]model.SuccessFactor, error) {
	c.mu.RLock()
	if c.loaded {
		factors := make([]model.SuccessFactor, len(c.factors))
		copy(factors, c.factors)
		c.mu.RUnlock()
		return factors, nil
	}
	c.mu.RUnlock()

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	factors := make([]model.SuccessFactor, len(c.factors))
	copy(factors, c.factors)

	return factors, nil
}

// Refresh reloads the catalog from the wrapped source.
func (c *Cache) Refresh(ctx context.Context) error {
	factors, err := c.source.Factors(ctx)
	if err != nil {
		return fmt.Errorf("could not refresh catalog: %w", err)
	}

	c.mu.Lock()
	c.factors = factors
	c.loaded = true
	c.mu.Unlock()

	c.logger.Debugf("Catalog cache refreshed with %d factors", len(factors))
	return nil
}
