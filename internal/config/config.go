// Package config holds the districtroute CLI configuration: defaults, an
// optional YAML file, and validation. Flags are layered on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config aggregates CLI configuration values.
type Config struct {
	// Dataset is a path to a YAML dataset; empty selects the built-in districts.
	Dataset string        `yaml:"dataset"`
	Output  OutputConfig  `yaml:"output"`
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json"`
}

// EngineConfig tunes the shortest-path engine.
type EngineConfig struct {
	// Workers bounds concurrent single-source runs in all-pairs mode; 0 = GOMAXPROCS.
	Workers int `yaml:"workers" validate:"gte=0"`
	// MaxDistance caps exploration; 0 disables the cap.
	MaxDistance float64 `yaml:"max_distance" validate:"gte=0"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format        string `yaml:"format" validate:"oneof=text json"`
	IncludeCaller bool   `yaml:"include_caller"`
}

const (
	defaultOutputFormat  = "text"
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
)

var validate = validator.New()

// Default returns the configuration used when no file or flag overrides it.
func Default() Config {
	return Config{
		Output:  OutputConfig{Format: defaultOutputFormat},
		Logging: LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
	}
}

// Load returns Default overlaid with the YAML file at path. An empty path
// returns the defaults unchanged. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerations and numeric ranges.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
