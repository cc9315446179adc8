package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
)

// HTTPSourceConfig is the configuration for the HTTP catalog source.
type HTTPSourceConfig struct {
	// URL is the public catalog endpoint.
	URL    string
	Client *http.Client
	Logger log.Logger
}

func (c *HTTPSourceConfig) defaults() error {
	if c.URL == "" {
		return fmt.Errorf("catalog url is required")
	}

	if c.Client == nil {
		c.Client = &http.Client{Timeout: 30 * time.Second}
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// HTTPSource loads the catalog from the public catalog endpoint. A failed
// fetch is retried exactly once before the error is surfaced.
type HTTPSource struct {
	url    string
	client *http.Client
	logger log.Logger
}

// NewHTTPSource creates a new HTTP catalog source.
func NewHTTPSource(cfg HTTPSourceConfig) (*HTTPSource, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &HTTPSource{
		url:    cfg.URL,
		client: cfg.Client,
		logger: cfg.Logger,
	}, nil
}

// Factors satisfies the Source interface.
func (s *HTTPSource) Factors(ctx context.Context) ([]model.SuccessFactor, error) {
	factors, err := s.fetch(ctx)
	if err == nil {
		return factors, nil
	}

	s.logger.Warningf("Catalog fetch failed, retrying once: %s", err)

	factors, err = s.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not fetch catalog: %w", err)
	}

	return factors, nil
}

func (s *HTTPSource) fetch(ctx context.Context) ([]model.SuccessFactor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var dtos []FactorDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("could not decode catalog response: %w", err)
	}

	return decodeFactors(dtos)
}
