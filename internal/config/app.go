package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	DefaultTileSize = 32
	DefaultTPS      = 60
)

type Config struct {
	Mode     string `json:"mode"`
	Params   string `json:"params"`
	TileSize int    `json:"tile_size"`
	TPS      int    `json:"tps"`
}

func Default() *Config {
	return &Config{
		Mode:     ModeProduction,
		TileSize: DefaultTileSize,
		TPS:      DefaultTPS,
	}
}

// Load reads the JSON config at path (skipped when path is empty) over the
// defaults, then applies DEVELOPMENT and MINES_PARAMS env overrides.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		if err := ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}
	if Development() {
		config.Mode = ModeDevelopment
	}
	if params, ok := os.LookupEnv("MINES_PARAMS"); ok {
		config.Params = params
	}
	if config.Mode != ModeDevelopment && config.Mode != ModeProduction {
		return nil, fmt.Errorf(
			"mode must be %q or %q, got %q", ModeDevelopment, ModeProduction, config.Mode,
		)
	}
	if config.TileSize <= 0 {
		return nil, fmt.Errorf("tile_size must be positive, got %d", config.TileSize)
	}
	if config.TPS <= 0 {
		return nil, fmt.Errorf("tps must be positive, got %d", config.TPS)
	}
	return config, nil
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

func (c Config) Development() bool {
	return c.Mode == ModeDevelopment
}

// [Config] implements [slog.LogValuer]
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", c.Mode),
		slog.String("params", c.Params),
		slog.Int("tile_size", c.TileSize),
		slog.Int("tps", c.TPS),
	)
}
