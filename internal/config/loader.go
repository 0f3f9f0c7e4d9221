package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering, lowest precedence first:
//  1. defaults (Defaults())
//  2. YAML file: configPath argument, falling back to the NFL_CONFIG env var
//  3. environment variables with the NFL_ prefix (NFL_API_KEY -> api_key)
//
// A .env file is loaded first so local development can keep the API key out
// of the shell profile. Env keys map to flat koanf keys with underscores
// preserved; nested endpoint settings are file-or-default only.
func Load(configPath string) (*Config, error) {
	// Load .env only for local dev
	_ = godotenv.Load()

	k := koanf.New(".")

	if configPath == "" {
		configPath = os.Getenv("NFL_CONFIG")
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("NFL_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "nfl_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *Defaults()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
