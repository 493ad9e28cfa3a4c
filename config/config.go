// Package config loads railnet settings: built-in defaults, then an optional
// YAML file, then RAILNET_* environment variables, then validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config aggregates application configuration values.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Query   QueryConfig   `yaml:"query"`
	Input   InputConfig   `yaml:"input"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format        string `yaml:"format" validate:"oneof=text json"` // text|json
	IncludeCaller bool   `yaml:"include_caller"`
}

// QueryConfig holds query engine behavior.
type QueryConfig struct {
	// AllowZeroLengthSelfPath makes shortest(X, X) answer [X] with distance 0.
	AllowZeroLengthSelfPath bool `yaml:"allow_zero_length_self_path"`

	// MaxResults caps enumeration results; 0 disables the cap.
	MaxResults int `yaml:"max_results" validate:"gte=0"`

	// ClosedRouteThreshold closes routes of at least this distance to
	// shortest-path queries; 0 closes none.
	ClosedRouteThreshold int64 `yaml:"closed_route_threshold" validate:"gte=0"`
}

// InputConfig names the default route file.
type InputConfig struct {
	File string `yaml:"file"`
}

// Environment variables read by Load.
const (
	EnvLogLevel     = "RAILNET_LOG_LEVEL"
	EnvLogFormat    = "RAILNET_LOG_FORMAT"
	EnvInput        = "RAILNET_INPUT"
	EnvSelfPathZero = "RAILNET_SELF_PATH_ZERO"
	EnvMaxResults   = "RAILNET_MAX_RESULTS"
	EnvClosedRoutes = "RAILNET_CLOSED_ROUTE_THRESHOLD"
)

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// ErrInvalid is returned when the merged configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
	}
}

// Load builds the configuration. path may be empty (no file); a named file
// that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input.File = v
	}
	if v := os.Getenv(EnvSelfPathZero); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s: %w", EnvSelfPathZero, err)
		}
		cfg.Query.AllowZeroLengthSelfPath = b
	}
	if v := os.Getenv(EnvMaxResults); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s: %w", EnvMaxResults, err)
		}
		cfg.Query.MaxResults = n
	}
	if v := os.Getenv(EnvClosedRoutes); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: invalid %s: %w", EnvClosedRoutes, err)
		}
		cfg.Query.ClosedRouteThreshold = n
	}

	return nil
}
