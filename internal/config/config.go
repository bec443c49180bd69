package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds runtime settings for the shiftpace binary.
type Config struct {
	DBPath            string
	RefreshInterval   time.Duration
	LogUseCases       bool
	SnapshotRetention time.Duration
}

// DefaultConfig returns the defaults. DBPath is left empty and resolved
// against the home directory by LoadConfig.
func DefaultConfig() Config {
	return Config{
		RefreshInterval:   60 * time.Second,
		LogUseCases:       false,
		SnapshotRetention: 24 * time.Hour,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for unset or invalid values.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("SHIFTPACE_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".shiftpace", "shiftpace.db")
	}

	if v := os.Getenv("SHIFTPACE_REFRESH_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RefreshInterval = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("SHIFTPACE_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SHIFTPACE_SNAPSHOT_RETENTION_HOURS"); v != "" {
		// 0 keeps every snapshot.
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SnapshotRetention = time.Duration(n) * time.Hour
		}
	}

	return cfg, nil
}
