package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// duration wraps time.Duration so config files can write "24h" instead of
// nanosecond integers; yaml.v3 has no native Duration support.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	v, err := time.ParseDuration(strings.TrimSpace(value.Value))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = duration(v)
	return nil
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", s, err)
		}
		*d = duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = duration(n)
	return nil
}

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to flags and env vars.
type FileConfig struct {
	URL    string `yaml:"url" json:"url"`
	Out    string `yaml:"out" json:"out"`
	Schema string `yaml:"schema" json:"schema"`

	Fetch struct {
		UserAgent   string   `yaml:"ua" json:"ua"`
		Timeout     duration `yaml:"timeout" json:"timeout"`
		MaxAttempts int      `yaml:"maxAttempts" json:"maxAttempts"`
	} `yaml:"fetch" json:"fetch"`

	Cache struct {
		Dir    string   `yaml:"dir" json:"dir"`
		MaxAge duration `yaml:"maxAge" json:"maxAge"`
		Clear  bool     `yaml:"clear" json:"clear"`
		Bypass bool     `yaml:"bypass" json:"bypass"`
	} `yaml:"cache" json:"cache"`

	Sinks struct {
		SQLite string `yaml:"sqlite" json:"sqlite"`
		PDF    string `yaml:"pdf" json:"pdf"`
	} `yaml:"sinks" json:"sinks"`

	Quiet   bool `yaml:"quiet" json:"quiet"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag defaults. Flags should already
// have been parsed; this lets file config supply defaults while preserving
// explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.URL == "" || cfg.URL == DefaultURL) && fc.URL != "" {
		cfg.URL = fc.URL
	}
	if (cfg.OutPath == "" || cfg.OutPath == DefaultOutPath) && fc.Out != "" {
		cfg.OutPath = fc.Out
	}
	if cfg.Schema == "" && fc.Schema != "" {
		cfg.Schema = fc.Schema
	}

	if cfg.UserAgent == "" && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.Timeout == 0 && fc.Fetch.Timeout > 0 {
		cfg.Timeout = time.Duration(fc.Fetch.Timeout)
	}
	if (cfg.MaxAttempts == 0 || cfg.MaxAttempts == DefaultMaxAttempts) && fc.Fetch.MaxAttempts > 0 {
		cfg.MaxAttempts = fc.Fetch.MaxAttempts
	}

	if (cfg.CacheDir == "" || cfg.CacheDir == DefaultCacheDir) && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = time.Duration(fc.Cache.MaxAge)
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}
	if !cfg.CacheBypass && fc.Cache.Bypass {
		cfg.CacheBypass = true
	}

	if cfg.SQLitePath == "" && fc.Sinks.SQLite != "" {
		cfg.SQLitePath = fc.Sinks.SQLite
	}
	if cfg.PDFPath == "" && fc.Sinks.PDF != "" {
		cfg.PDFPath = fc.Sinks.PDF
	}

	if !cfg.Quiet && fc.Quiet {
		cfg.Quiet = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
