// Package config loads pipeline configuration by layering built-in defaults,
// an optional YAML file, and NFL_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// ErrMissingKey indicates a required configuration value was not provided by
// any layer.
var ErrMissingKey = errors.New("missing config key")

// Endpoint describes one remote data source: where to reach it and which
// response fields to keep.
type Endpoint struct {
	URL              string   `koanf:"endpoint"`
	FieldsOfInterest []string `koanf:"fields_of_interest"`
}

type Config struct {
	// APIKey authenticates against both chalk247 endpoints. Required, no
	// default; supply via NFL_API_KEY, .env, or the config file.
	APIKey string `koanf:"api_key"`

	Scoreboard Endpoint `koanf:"scoreboard"`
	Rankings   Endpoint `koanf:"rankings"`

	// OutputDir receives one timestamped artifact per run.
	OutputDir string `koanf:"output_dir"`

	// OutputFormat is "json" or "csv".
	OutputFormat string `koanf:"output_format"`

	// AuditDir receives the per-day stage audit files.
	AuditDir string `koanf:"audit_dir"`

	// RequestTimeoutSeconds bounds each endpoint call. There are no retries.
	RequestTimeoutSeconds int `koanf:"request_timeout_seconds"`
}

// Defaults returns the built-in configuration. Endpoint templates and field
// allow-lists match the chalk247 NFL API.
func Defaults() *Config {
	return &Config{
		Scoreboard: Endpoint{
			URL: "https://delivery.chalk247.com/scoreboard/NFL.json",
			FieldsOfInterest: []string{
				"event_date",
				"away_team_id",
				"away_nick_name",
				"away_city",
				"home_team_id",
				"home_nick_name",
				"home_city",
			},
		},
		Rankings: Endpoint{
			URL: "https://delivery.chalk247.com/team_rankings/NFL.json",
			FieldsOfInterest: []string{
				"team_id",
				"rank",
				"adjusted_points",
			},
		},
		OutputDir:             "output_data",
		OutputFormat:          "json",
		AuditDir:              "logs",
		RequestTimeoutSeconds: 15,
	}
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c *Config) validate() error {
	var err error
	required := []struct {
		key    string
		absent bool
	}{
		{"api_key", c.APIKey == ""},
		{"scoreboard.endpoint", c.Scoreboard.URL == ""},
		{"scoreboard.fields_of_interest", len(c.Scoreboard.FieldsOfInterest) == 0},
		{"rankings.endpoint", c.Rankings.URL == ""},
		{"rankings.fields_of_interest", len(c.Rankings.FieldsOfInterest) == 0},
		{"output_dir", c.OutputDir == ""},
		{"audit_dir", c.AuditDir == ""},
	}
	for _, req := range required {
		if req.absent {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrMissingKey, req.key))
		}
	}
	if c.OutputFormat != "json" && c.OutputFormat != "csv" {
		err = multierr.Append(err, fmt.Errorf("output_format must be json or csv, got %q", c.OutputFormat))
	}
	return err
}
