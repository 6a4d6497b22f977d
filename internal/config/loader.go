package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	defaultConfigPath = "./config.yaml"
	defaultEnvFile    = ".env"
)

// Load builds the gateway configuration. Sources, highest priority first:
// the process environment, the dotenv file, the YAML file and the
// env-default tags.
//
// The dotenv file is named by ENV_FILE (default ".env") and never overrides a
// variable that is already set. The YAML file is named by CONFIG_PATH
// (default "./config.yaml"). Either file may be absent unless its variable
// names it explicitly.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := readSources(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// lookupPath returns the path named by env, or fallback when env is unset or
// empty. explicit reports whether env named it.
func lookupPath(env, fallback string) (path string, explicit bool) {
	if p := os.Getenv(env); p != "" {
		return p, true
	}
	return fallback, false
}

func loadEnvFile() error {
	path, explicit := lookupPath("ENV_FILE", defaultEnvFile)

	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}
	return fmt.Errorf("config: env file %s: %w", path, err)
}

func readSources(cfg *Config) error {
	path, explicit := lookupPath("CONFIG_PATH", defaultConfigPath)

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
