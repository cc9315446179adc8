package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.Repository. It is
// used on tests and as a throwaway backend.
type Repository struct {
	tasks      map[string]map[string]model.ProjectTask // project id -> task id -> task.
	projects   map[string]model.Project
	orgs       map[string]model.Organisation
	users      map[string]model.User
	sessions   map[string]model.Session
	factors    map[string]model.SuccessFactor
	factorIDs  []string
	heuristics map[string]model.Heuristic
	ratings    map[string]map[string]model.FactorRating // project id -> factor id -> rating.
	mu         sync.RWMutex
	logger     log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		tasks:      map[string]map[string]model.ProjectTask{},
		projects:   map[string]model.Project{},
		orgs:       map[string]model.Organisation{},
		users:      map[string]model.User{},
		sessions:   map[string]model.Session{},
		factors:    map[string]model.SuccessFactor{},
		heuristics: map[string]model.Heuristic{},
		ratings:    map[string]map[string]model.FactorRating{},
		logger:     cfg.Logger,
	}, nil
}

func now() time.Time { return time.Now().UTC().Truncate(time.Second) }
