// Package config loads the optional settings file shared by the command-line tools.
//
// Settings may be written as YAML (.yaml, .yml) or TOML (.toml). Keys missing from the
// file keep their defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nvr-ai/go-toolbox/movies"
	"github.com/nvr-ai/go-toolbox/treasuremap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Config is the root of the settings file.
type Config struct {
	Logging     Logging     `yaml:"logging" toml:"logging"`
	TreasureMap TreasureMap `yaml:"treasure_map" toml:"treasure_map"`
	Movies      Movies      `yaml:"movies" toml:"movies"`
}

// Logging configures the zap logger.
type Logging struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // console, json
}

// TreasureMap configures the map changer.
type TreasureMap struct {
	Charset treasuremap.Charset `yaml:"charset" toml:"charset"`
	// Seed fixes the noise sequence. Zero seeds from the clock.
	Seed int64 `yaml:"seed" toml:"seed"`
}

// Movies configures the movie selector's validation bounds.
type Movies struct {
	MinYear   int `yaml:"min_year" toml:"min_year"`
	MaxYear   int `yaml:"max_year" toml:"max_year"`
	MinLength int `yaml:"min_length" toml:"min_length"`
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Logging: Logging{
			Level:  "warn",
			Format: "console",
		},
		TreasureMap: TreasureMap{
			Charset: treasuremap.DefaultCharset(),
		},
		Movies: Movies{
			MinYear:   movies.DefaultMinYear,
			MaxYear:   movies.DefaultMaxYear,
			MinLength: movies.DefaultMinLength,
		},
	}
}

// Load reads settings from path on top of the defaults. An empty path returns the
// defaults.
//
// Arguments:
// - path: A .yaml, .yml or .toml file, or "".
//
// Returns:
// - The validated settings.
// - error if the file cannot be read, decoded or validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "decode YAML config %s", path)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrapf(err, "decode TOML config %s", path)
		}
	default:
		return nil, errors.Errorf("unsupported config extension %q (want .yaml, .yml or .toml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if !lo.Contains(validLevels, strings.ToLower(c.Logging.Level)) {
		return errors.Errorf("logging.level %q must be one of %v", c.Logging.Level, validLevels)
	}
	if !lo.Contains(validFormats, strings.ToLower(c.Logging.Format)) {
		return errors.Errorf("logging.format %q must be one of %v", c.Logging.Format, validFormats)
	}
	if err := c.TreasureMap.Charset.Validate(); err != nil {
		return errors.Wrap(err, "treasure_map.charset")
	}
	if c.Movies.MinYear > c.Movies.MaxYear {
		return errors.Errorf("movies.min_year %d is after movies.max_year %d", c.Movies.MinYear, c.Movies.MaxYear)
	}
	if c.Movies.MinLength < 1 {
		return errors.Errorf("movies.min_length %d must be at least 1", c.Movies.MinLength)
	}
	return nil
}
