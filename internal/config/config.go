package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Upstream API
	APIKey  string `env:"OPENROUTER_API_KEY"`
	BaseURL string `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`

	// Cache
	CacheDir string        `env:"ORMODELS_CACHE_DIR"`
	CacheTTL time.Duration `env:"ORMODELS_CACHE_TTL" envDefault:"24h"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.CacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = ".cache"
		}
		cfg.CacheDir = filepath.Join(base, "ormodels")
	}

	return cfg, nil
}

// CachePath returns the location of the model catalog blob.
func (c *Config) CachePath() string {
	return filepath.Join(c.CacheDir, CacheFileName)
}
