package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/heritage-alg/heritage/internal/carousel"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HERITAGE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (HERITAGE_*). A double underscore separates
// nested keys: HERITAGE_SERVER__PORT sets server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validSources is the set of recognized data.source values.
var validSources = map[DataSource]bool{
	SourceJSON:   true,
	SourceHTTP:   true,
	SourceSQLite: true,
}

// validStrategies is the set of recognized carousel.strategy values.
var validStrategies = map[carousel.Strategy]bool{
	carousel.StrategyModular: true,
	carousel.StrategyTiled:   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if !validSources[c.Data.Source] {
		return fmt.Errorf("invalid data.source %q: must be one of json, http, sqlite", c.Data.Source)
	}
	switch c.Data.Source {
	case SourceJSON:
		if c.Data.ProductsJSON == "" {
			return fmt.Errorf("data.products_json is required")
		}
	case SourceHTTP:
		if !strings.HasPrefix(c.Data.ProductsURL, "http://") && !strings.HasPrefix(c.Data.ProductsURL, "https://") {
			return fmt.Errorf("data.products_url must be an http(s) URL")
		}
	case SourceSQLite:
		if c.Data.DBPath == "" {
			return fmt.Errorf("data.db_path is required")
		}
	}

	if c.Carousel.Strategy != "" && !validStrategies[carousel.Strategy(c.Carousel.Strategy)] {
		return fmt.Errorf("invalid carousel.strategy %q: must be one of modular, tiled", c.Carousel.Strategy)
	}
	if c.Carousel.VisibleCount < 1 {
		return fmt.Errorf("carousel.visible_count must be at least 1")
	}
	if c.Carousel.Gap < 0 {
		return fmt.Errorf("carousel.gap must be non-negative")
	}
	if c.Carousel.Breakpoint <= 0 {
		return fmt.Errorf("carousel.breakpoint must be positive")
	}
	if c.Carousel.TileFactor < 2 {
		return fmt.Errorf("carousel.tile_factor must be at least 2")
	}
	if c.Carousel.Buffer < 0 {
		return fmt.Errorf("carousel.buffer must be non-negative")
	}
	if c.Carousel.MinSwipe <= 0 {
		return fmt.Errorf("carousel.min_swipe must be positive")
	}

	if c.Images.Quality < 1 || c.Images.Quality > 100 {
		return fmt.Errorf("images.quality must be between 1 and 100")
	}
	if c.Images.Concurrency < 0 {
		return fmt.Errorf("images.concurrency must be non-negative")
	}

	if c.Build.OutputDir == "" {
		return fmt.Errorf("build.output_dir is required")
	}

	return nil
}
