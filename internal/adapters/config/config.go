package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	Pipeline PipelineConfig `envconfig:"PIPELINE"`
	Logging  LoggingConfig  `envconfig:"LOGGING"`
}

// PipelineConfig represents batch pipeline parameters
type PipelineConfig struct {
	InputPath   string `envconfig:"PIPELINE_INPUT" default:"tweets.json"`
	OutputPath  string `envconfig:"PIPELINE_OUTPUT" default:"db_tweets.csv"`
	Language    string `envconfig:"PIPELINE_LANGUAGE" default:"en"`
	Workers     int    `envconfig:"PIPELINE_WORKERS" default:"4"`
	ZeroFill    bool   `envconfig:"PIPELINE_ZERO_FILL" default:"false"`
	TrendPeriod int    `envconfig:"PIPELINE_TREND_PERIOD" default:"6"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" default:""`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Pipeline.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Pipeline.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Pipeline.Language == "" {
		return fmt.Errorf("language gate is required")
	}
	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.Pipeline.TrendPeriod < 1 {
		return fmt.Errorf("trend_period must be at least 1")
	}

	return nil
}
