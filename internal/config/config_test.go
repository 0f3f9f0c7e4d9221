package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultsWithAPIKeyFromEnv(t *testing.T) {
	t.Setenv("NFL_API_KEY", "test-key")

	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "https://delivery.chalk247.com/scoreboard/NFL.json", cfg.Scoreboard.URL)
	assert.Contains(t, cfg.Scoreboard.FieldsOfInterest, "event_date")
	assert.Equal(t, []string{"team_id", "rank", "adjusted_points"}, cfg.Rankings.FieldsOfInterest)
	assert.Equal(t, "output_data", cfg.OutputDir)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 15, cfg.RequestTimeoutSeconds)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("NFL_API_KEY", "")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingKey)
	assert.Contains(t, err.Error(), "api_key")
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Setenv("NFL_API_KEY", "test-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "output_dir: custom_out\nscoreboard:\n  endpoint: https://example.com/scoreboard.json\n"
	assert.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "custom_out", cfg.OutputDir)
	assert.Equal(t, "https://example.com/scoreboard.json", cfg.Scoreboard.URL)
	// untouched keys keep their defaults
	assert.Equal(t, "https://delivery.chalk247.com/team_rankings/NFL.json", cfg.Rankings.URL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("NFL_API_KEY", "test-key")
	t.Setenv("NFL_OUTPUT_DIR", "env_out")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("output_dir: file_out\n"), 0644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "env_out", cfg.OutputDir)
}

func TestLoad_InvalidOutputFormat(t *testing.T) {
	t.Setenv("NFL_API_KEY", "test-key")
	t.Setenv("NFL_OUTPUT_FORMAT", "xml")

	_, err := Load("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "output_format")
}

func TestValidate_CollectsAllMissingKeys(t *testing.T) {
	cfg := &Config{OutputFormat: "json"}
	err := cfg.validate()
	assert.ErrorIs(t, err, ErrMissingKey)
	for _, key := range []string{"api_key", "scoreboard.endpoint", "rankings.endpoint", "output_dir", "audit_dir"} {
		assert.Contains(t, err.Error(), key)
	}
}
