// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds everything main needs outside the LLM subsystem.
type AppConfig struct {
	// DBPath is the saved scenario store. Empty means ~/.chronos/chronos.db.
	DBPath string `env:"CHRONOS_DB"`
	// CatalogPath optionally replaces the built-in content catalog.
	CatalogPath      string  `env:"CHRONOS_CATALOG"`
	HTTPAddr         string  `env:"CHRONOS_HTTP_ADDR" envDefault:":8080"`
	ClusterThreshold float64 `env:"CHRONOS_CLUSTER_THRESHOLD" envDefault:"30"`
	// Seed fixes procedural generation. 0 draws a fresh seed per scenario.
	Seed int64 `env:"CHRONOS_SEED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses AppConfig and resolves the default database path.
func Load() (AppConfig, error) {
	var cfg AppConfig
	if err := ParseEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.ClusterThreshold <= 0 {
		return AppConfig{}, fmt.Errorf("CHRONOS_CLUSTER_THRESHOLD must be positive, got %g", cfg.ClusterThreshold)
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return AppConfig{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".chronos", "chronos.db")
	}
	return cfg, nil
}
