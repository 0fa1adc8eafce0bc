package app

import (
	"os"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.URL == "" || cfg.URL == DefaultURL {
		if v := os.Getenv("TEAMVALUES_URL"); v != "" {
			cfg.URL = v
		}
	}
	if cfg.OutPath == "" || cfg.OutPath == DefaultOutPath {
		if v := os.Getenv("TEAMVALUES_OUT"); v != "" {
			cfg.OutPath = v
		}
	}
	if cfg.Schema == "" {
		cfg.Schema = os.Getenv("TEAMVALUES_SCHEMA")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("TEAMVALUES_UA")
	}
	if cfg.Timeout == 0 {
		if v := os.Getenv("TEAMVALUES_TIMEOUT"); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				cfg.Timeout = d
			}
		}
	}
	if cfg.CacheDir == "" || cfg.CacheDir == DefaultCacheDir {
		if v := os.Getenv("CACHE_DIR"); v != "" {
			cfg.CacheDir = v
		}
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = os.Getenv("TEAMVALUES_SQLITE")
	}
	if cfg.PDFPath == "" {
		cfg.PDFPath = os.Getenv("TEAMVALUES_PDF")
	}
}
