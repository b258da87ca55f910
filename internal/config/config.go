package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration, loaded from the environment
type Config struct {
	Host        string `env:"GUNGLE_HOST" envDefault:""`
	Port        int    `env:"GUNGLE_PORT" envDefault:"8080"`
	StorageType string `env:"GUNGLE_STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"GUNGLE_REDIS_URL"`
	CatalogPath string `env:"GUNGLE_CATALOG_PATH" envDefault:"data/catalog.yaml"`
	UploadDir   string `env:"GUNGLE_UPLOAD_DIR" envDefault:"uploads"`
	MaxGuesses  int    `env:"GUNGLE_MAX_GUESSES" envDefault:"5"`
}

// Load reads configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
