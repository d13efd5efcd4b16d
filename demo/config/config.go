package config

import (
	"fmt"
	"os"

	"github.com/gorustyt/gonavmesh/common/logger"
	"github.com/gorustyt/gonavmesh/detour"
	"github.com/hjson/hjson-go/v4"
)

// Config is the navmesh tool configuration, stored as hjson.
type Config struct {
	Log   logger.Config `json:"log"`
	Query QueryConfig   `json:"query"`
}

type QueryConfig struct {
	Mode            string  `json:"mode"`
	ExpansionFactor float32 `json:"expansionFactor"`
	GridCellScale   float32 `json:"gridCellScale"`
	MaxGridDim      int     `json:"maxGridDim"`
}

func Default() *Config {
	return &Config{
		Log: logger.DefaultConfig(),
		Query: QueryConfig{
			Mode:            detour.Accuracy.String(),
			ExpansionFactor: detour.DefaultExpansionFactor,
			GridCellScale:   detour.DefaultGridCellScale,
			MaxGridDim:      detour.DefaultMaxGridDim,
		},
	}
}

// Load reads an hjson file over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Decode(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode merges hjson data into cfg and validates the result.
func (cfg *Config) Decode(data []byte) error {
	if err := hjson.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return cfg.Validate()
}

func (cfg *Config) Validate() error {
	if _, err := cfg.QueryMode(); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	if cfg.Query.ExpansionFactor < 0 {
		return fmt.Errorf("query.expansionFactor must not be negative: %v", cfg.Query.ExpansionFactor)
	}
	return nil
}

func (cfg *Config) QueryMode() (detour.QueryMode, error) {
	return detour.ParseQueryMode(cfg.Query.Mode)
}

// MeshOptions turns the grid settings into mesh build options.
func (cfg *Config) MeshOptions() []detour.Option {
	return []detour.Option{
		detour.WithGridCellScale(cfg.Query.GridCellScale),
		detour.WithMaxGridDim(cfg.Query.MaxGridDim),
	}
}

// Encode renders cfg as hjson.
func (cfg *Config) Encode() ([]byte, error) {
	return hjson.Marshal(cfg)
}
