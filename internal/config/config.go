package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
// Only ambient concerns are configurable; the extraction parameters
// themselves (seasons, season types, query constants) are fixed at build
// time in constants.go and the nba package.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http" envconfig:"HTTP"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
	Pacing  PacingConfig  `yaml:"pacing" envconfig:"PACING"`
}

// HTTPConfig contains upstream request configuration
type HTTPConfig struct {
	BaseURL string        `yaml:"base_url" envconfig:"BASE_URL" validate:"omitempty,url"`
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	Dir    string `yaml:"dir" envconfig:"DIR" validate:"required"`
}

// ExportConfig contains workbook output configuration
type ExportConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR" validate:"required"`
}

// PacingConfig bounds the randomized pause between season requests
type PacingConfig struct {
	MinDelay time.Duration `yaml:"min_delay" envconfig:"MIN_DELAY" validate:"gte=0"`
	MaxDelay time.Duration `yaml:"max_delay" envconfig:"MAX_DELAY" validate:"gtefield=MinDelay"`
}

// Load loads configuration from defaults, an optional config file, and
// environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	cfg := Default()

	// Load from config file if exists
	if configFile := getConfigFilePath(); configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Environment variables override file values
	if err := envconfig.Process("NBA", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile merges configuration from a YAML file into cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	return nil
}

// Validate validates the configuration using struct tags
func (c *Config) Validate() error {
	v := validator.New()

	if err := v.Struct(c); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		msgs := make([]string, 0, len(validationErrors))
		for _, ve := range validationErrors {
			msgs = append(msgs, formatValidationError(ve))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}

	return nil
}

// formatValidationError formats validation error messages
func formatValidationError(err validator.FieldError) string {
	field := err.Namespace()
	tag := err.Tag()
	param := err.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Replace(param, " ", ", ", -1))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "gtefield":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use defaults and env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout: DefaultHTTPTimeout,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Output: DefaultLogOutput,
			Dir:    DefaultLogsDir,
		},
		Export: ExportConfig{
			Dir: DefaultOutputDir,
		},
		Pacing: PacingConfig{
			MinDelay: DefaultMinRequestDelay,
			MaxDelay: DefaultMaxRequestDelay,
		},
	}
}
