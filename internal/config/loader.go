package config

import (
	"cmp"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultFile = "config.yaml"

// Load builds the configuration from a YAML file, environment variables and
// env-default tags, in increasing priority: defaults, YAML, ENV.
//
// An explicit path (argument or CONFIG_PATH) must exist. The fallback
// ./config.yaml is optional; without it only ENV and defaults apply.
func Load(path string) (*Config, error) {
	file, required := configFile(path)

	cfg := Defaults()
	switch _, statErr := os.Stat(file); {
	case statErr == nil:
		if err := cleanenv.ReadConfig(file, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	case required:
		return nil, fmt.Errorf("config: file %s: %w", file, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func configFile(flag string) (file string, required bool) {
	if p := cmp.Or(flag, os.Getenv("CONFIG_PATH")); p != "" {
		return p, true
	}
	return defaultFile, false
}
