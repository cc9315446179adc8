package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Greg-CLD/tcof/internal/log"
	"github.com/Greg-CLD/tcof/internal/model"
)

// FileSourceConfig is the configuration for the YAML file catalog source.
type FileSourceConfig struct {
	// Path is the catalog file path. When FS is unset the path is split into
	// a directory filesystem and a base name.
	Path   string
	FS     fs.FS
	Logger log.Logger
}

func (c *FileSourceConfig) defaults() error {
	if c.Path == "" {
		return fmt.Errorf("catalog file path is required")
	}

	if c.FS == nil {
		c.FS = os.DirFS(filepath.Dir(c.Path))
		c.Path = filepath.Base(c.Path)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// FileSource loads the catalog and the preset heuristics from a YAML file.
type FileSource struct {
	fs     fs.FS
	path   string
	logger log.Logger
}

// NewFileSource creates a new YAML file catalog source.
func NewFileSource(cfg FileSourceConfig) (*FileSource, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &FileSource{
		fs:     cfg.FS,
		path:   cfg.Path,
		logger: cfg.Logger,
	}, nil
}

// Load reads the catalog file and returns validated domain models.
func (s *FileSource) Load(ctx context.Context) ([]model.SuccessFactor, []model.Heuristic, error) {
	data, err := fs.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading catalog file: %w", err)
	}

	if ctx.Err() != nil {
		return nil, nil, ctx.Err()
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing YAML: %w", err)
	}

	factors := make([]model.SuccessFactor, 0, len(file.Factors))
	for _, f := range file.Factors {
		factor, err := f.toModel()
		if err != nil {
			return nil, nil, fmt.Errorf("invalid catalog file: %w", err)
		}
		factors = append(factors, factor)
	}

	now := time.Now().UTC()
	heuristics := make([]model.Heuristic, 0, len(file.Heuristics))
	for _, h := range file.Heuristics {
		heuristic := h.toModel(now)
		if err := heuristic.Validate(); err != nil {
			return nil, nil, fmt.Errorf("invalid catalog file: %w", err)
		}
		heuristics = append(heuristics, heuristic)
	}

	return factors, heuristics, nil
}

// Factors satisfies the Source interface.
func (s *FileSource) Factors(ctx context.Context) ([]model.SuccessFactor, error) {
	factors, _, err := s.Load(ctx)
	return factors, err
}

// catalogFile represents the YAML structure of the catalog file.
type catalogFile struct {
	Factors    []factorYAML    `yaml:"factors"`
	Heuristics []heuristicYAML `yaml:"heuristics"`
}

// factorYAML represents the YAML structure of a success factor. Stage keys
// are matched case insensitively.
type factorYAML struct {
	ID          string              `yaml:"id"`
	Title       string              `yaml:"title"`
	Description string              `yaml:"description"`
	Tasks       map[string][]string `yaml:"tasks"`
}

func (f factorYAML) toModel() (model.SuccessFactor, error) {
	factor := model.SuccessFactor{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Tasks:       map[model.Stage][]string{},
	}

	for key, texts := range f.Tasks {
		stage, err := model.ParseStage(key)
		if err != nil {
			return model.SuccessFactor{}, fmt.Errorf("factor %s: %w", f.ID, err)
		}
		factor.Tasks[stage] = texts
	}

	if err := factor.Validate(); err != nil {
		return model.SuccessFactor{}, err
	}

	return factor, nil
}

// heuristicYAML represents the YAML structure of a preset heuristic.
type heuristicYAML struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

func (h heuristicYAML) toModel(now time.Time) model.Heuristic {
	return model.Heuristic{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
