package config

import (
	"os"
	"strings"
)

// Config holds runtime configuration for the notifier. It is constructed once
// at the invocation boundary and passed by value into the pipeline; nothing
// downstream reads the environment directly.
type Config struct {
	APIKey       string
	TopicARN     string
	FootballData FootballDataConfig
	Log          LogConfig
	Metrics      MetricsConfig
}

// FootballDataConfig controls how we talk to the football-data.org API.
type FootballDataConfig struct {
	BaseURL string
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// Required values are not validated here; call Validate before running the
// pipeline.
func Load() Config {
	return Config{
		APIKey:   os.Getenv(EnvAPIKey),
		TopicARN: os.Getenv(EnvTopicARN),
		FootballData: FootballDataConfig{
			BaseURL: envOrDefault(envFootballDataBaseURL, defaultFootballDataBaseURL),
		},
		Log: LogConfig{
			Level:  os.Getenv(envLogLevel),
			Format: os.Getenv(envLogFormat),
		},
		Metrics: loadMetrics(),
	}
}

// Validate reports the required variables that are missing or empty. The
// returned error lists every missing name so a single deploy fix covers all
// of them.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.APIKey) == "" {
		missing = append(missing, EnvAPIKey)
	}
	if strings.TrimSpace(c.TopicARN) == "" {
		missing = append(missing, EnvTopicARN)
	}
	if len(missing) > 0 {
		return &ConfigurationError{Missing: missing}
	}
	return nil
}
